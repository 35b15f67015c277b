package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/config"
)

// NewSetCmd creates the 'set' command for adding or replacing an override.
func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <node> <type@name> <home>",
		Short: "Set a tool location override on a node",
		Long: `Set a node-specific home directory for a tool installation.

The tool is addressed by its "type@name" compound key. An existing override
for the same key is replaced; the node's override list is saved wholesale.
Controller nodes cannot carry overrides.`,
		Example: `  tool-locator set agent-1 jdk@jdk8 /opt/jdk8
  tool-locator set agent-2 maven@mvn3 /usr/local/maven`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2])
		},
	}

	return cmd
}

// runSet adds or replaces one override and saves the config.
func runSet(nodeName, toolKey, home string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	nc, ok := cfg.Nodes[nodeName]
	if !ok {
		return fmt.Errorf("node '%s' not found", nodeName)
	}
	if nc.Kind != "agent" {
		return fmt.Errorf("node '%s' is a %s node and cannot carry tool overrides", nodeName, nc.Kind)
	}

	sep := strings.Index(toolKey, "@")
	if sep < 0 {
		return fmt.Errorf("invalid tool key %q (expected type@name)", toolKey)
	}

	// New overrides must reference a live type; only already-stored
	// entries may go stale.
	typeID := toolKey[:sep]
	if _, ok := cfg.ToolTypes[typeID]; !ok {
		return fmt.Errorf("unknown tool type %q", typeID)
	}

	if !installationDeclared(cfg, toolKey) {
		fmt.Fprintf(os.Stderr, "Warning: no installation matches '%s'; the override will not apply until one is declared\n", toolKey)
	}

	replaced := false
	for _, loc := range nc.ToolLocations {
		if loc.Key == toolKey {
			loc.Home = home
			replaced = true
			break
		}
	}
	if !replaced {
		nc.ToolLocations = append(nc.ToolLocations, &config.LocationConfig{Key: toolKey, Home: home})
	}

	configPath, err := config.GetDefaultConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Set %s on '%s' to %s\n", toolKey, nodeName, home)
	return nil
}

// installationDeclared reports whether any declared installation matches key.
func installationDeclared(cfg *config.Config, key string) bool {
	for _, inst := range cfg.Installations {
		if inst.Type+"@"+inst.Name == key {
			return true
		}
	}
	return false
}
