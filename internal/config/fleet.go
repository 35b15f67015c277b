package config

import (
	"fmt"
	"sort"

	"github.com/hvmk/tool-locator/internal/node"
	"github.com/hvmk/tool-locator/internal/registry"
	"github.com/hvmk/tool-locator/internal/tools"
)

// BuildRegistry constructs the tool type registry declared by the config.
func BuildRegistry(cfg *Config) (*registry.Registry, error) {
	reg := registry.New()
	for _, id := range sortedTypeIDs(cfg) {
		tt := cfg.ToolTypes[id]
		displayName := tt.DisplayName
		if displayName == "" {
			displayName = id
		}
		if err := reg.Register(&tools.Descriptor{ID: id, DisplayName: displayName}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// BuildInstallations constructs the shared installation list, in config
// order, resolving each declared type against reg.
func BuildInstallations(cfg *Config, reg *registry.Registry) ([]tools.Installation, error) {
	installs := make([]tools.Installation, 0, len(cfg.Installations))
	for _, ic := range cfg.Installations {
		desc, err := reg.Find(ic.Type)
		if err != nil {
			return nil, fmt.Errorf("installation %q: %w", ic.Name, err)
		}
		installs = append(installs, tools.NewInstallation(desc, ic.Name, ic.Home))
	}
	return installs, nil
}

// BuildFleet constructs the fleet nodes with their override sets attached.
//
// Override locations are built key-only: a stale type ID loads fine and is
// only flagged when that entry is displayed, never at build time.
func BuildFleet(cfg *Config) (map[string]*node.Node, error) {
	fleet := make(map[string]*node.Node, len(cfg.Nodes))
	for name, nc := range cfg.Nodes {
		n := node.New(name, node.Kind(nc.Kind))
		if nc.ToolLocations != nil {
			locations := make([]tools.Location, 0, len(nc.ToolLocations))
			for _, lc := range nc.ToolLocations {
				loc, err := tools.ParseLocation(lc.Key, lc.Home)
				if err != nil {
					return nil, fmt.Errorf("node %q: %w", name, err)
				}
				locations = append(locations, loc)
			}
			overrides, err := tools.NewNodeOverrides(locations)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", name, err)
			}
			if err := n.SetToolOverrides(overrides); err != nil {
				return nil, err
			}
		}
		fleet[name] = n
	}
	return fleet, nil
}

// SortedNodeNames returns the config's node names in stable order.
func SortedNodeNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Nodes))
	for name := range cfg.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedTypeIDs(cfg *Config) []string {
	ids := make([]string, 0, len(cfg.ToolTypes))
	for id := range cfg.ToolTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
