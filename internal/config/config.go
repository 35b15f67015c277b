/*
Package config handles loading, saving, and validating tool-locator
configuration.

Configuration is stored in ~/.tool-locator.json and declares the shared tool
types, the named installations of those types, and the fleet nodes with
their per-node tool location overrides.

Schema:

	{
	  "toolTypes": {
	    "jdk": {"displayName": "JDK"}
	  },
	  "installations": [
	    {"type": "jdk", "name": "jdk8", "home": "/usr/lib/jvm/jdk8"}
	  ],
	  "nodes": {
	    "agent-1": {
	      "kind": "agent",
	      "toolLocations": [
	        {"key": "jdk@jdk8", "home": "/opt/jdk8"}
	      ]
	    }
	  }
	}
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the root configuration structure.
type Config struct {
	// ToolTypes maps canonical type IDs to their metadata.
	ToolTypes map[string]*ToolTypeConfig `json:"toolTypes"`

	// Installations are the shared tool installations.
	Installations []*InstallationConfig `json:"installations,omitempty"`

	// Nodes maps fleet node names to their configurations.
	Nodes map[string]*NodeConfig `json:"nodes,omitempty"`
}

// ToolTypeConfig describes one registered tool type.
type ToolTypeConfig struct {
	// DisplayName is shown in listings. Defaults to the type ID.
	DisplayName string `json:"displayName,omitempty"`
}

// InstallationConfig describes one shared tool installation.
type InstallationConfig struct {
	// Type is the canonical tool type ID (must be declared in toolTypes).
	Type string `json:"type"`

	// Name is the installation's user-assigned name, unique within its type.
	Name string `json:"name"`

	// Home is the default home path used when a node has no override.
	Home string `json:"home"`
}

// NodeConfig describes one fleet node.
type NodeConfig struct {
	// Kind is "controller" or "agent".
	Kind string `json:"kind"`

	// ToolLocations are this node's overrides. Only agent nodes may carry
	// them; they are replaced wholesale on every save.
	ToolLocations []*LocationConfig `json:"toolLocations,omitempty"`
}

// LocationConfig is one stored override as a (key, home) pair.
type LocationConfig struct {
	// Key is the "type@name" compound key.
	Key string `json:"key"`

	// Home is the node-specific home path.
	Home string `json:"home"`
}

// NewConfig creates a new empty configuration with initialized maps.
func NewConfig() *Config {
	return &Config{
		ToolTypes: make(map[string]*ToolTypeConfig),
		Nodes:     make(map[string]*NodeConfig),
	}
}

// GetDefaultConfigPath returns the path to ~/.tool-locator.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tool-locator.json"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}
