/*
Package config provides validation helpers for fleet configurations.

This file contains the invariants enforced before a config is saved or used
to build the in-memory fleet.
*/
package config

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants of a configuration.
//
// An override whose key references a type absent from toolTypes is NOT an
// error here: stale overrides must stay loadable so the editing surface can
// flag them. The key itself still has to be well-formed.
func Validate(cfg *Config) error {
	// Type IDs are embedded in "type@name" compound keys, so '@' is
	// reserved. This is the invariant the whole key encoding rests on.
	for id := range cfg.ToolTypes {
		if id == "" {
			return fmt.Errorf("tool type ID must not be empty")
		}
		if strings.Contains(id, "@") {
			return fmt.Errorf("tool type %q: ID must not contain '@'", id)
		}
	}

	seen := make(map[string]bool)
	for _, inst := range cfg.Installations {
		if inst.Type == "" || inst.Name == "" {
			return fmt.Errorf("installation %q: type and name are required", inst.Name)
		}
		if inst.Home == "" {
			return fmt.Errorf("installation %q: default home is required", inst.Name)
		}
		if _, ok := cfg.ToolTypes[inst.Type]; !ok {
			return fmt.Errorf("installation %q: unknown tool type %q", inst.Name, inst.Type)
		}
		key := inst.Type + "@" + inst.Name
		if seen[key] {
			return fmt.Errorf("duplicate installation %q", key)
		}
		seen[key] = true
	}

	for name, n := range cfg.Nodes {
		if name == "" {
			return fmt.Errorf("node name must not be empty")
		}
		if n.Kind != "controller" && n.Kind != "agent" {
			return fmt.Errorf("node %q: unknown kind %q", name, n.Kind)
		}
		if n.Kind == "controller" && len(n.ToolLocations) > 0 {
			return fmt.Errorf("node %q: controller nodes cannot carry tool overrides", name)
		}
		for _, loc := range n.ToolLocations {
			if !strings.Contains(loc.Key, "@") {
				return fmt.Errorf("node %q: invalid tool key %q (expected type@name)", name, loc.Key)
			}
			if loc.Home == "" {
				return fmt.Errorf("node %q: override %q: home is required", name, loc.Key)
			}
		}
	}

	return nil
}
