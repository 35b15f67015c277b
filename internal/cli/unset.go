package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/config"
)

// NewUnsetCmd creates the 'unset' command for removing an override.
func NewUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unset <node> <type@name>",
		Aliases: []string{"rm"},
		Short:   "Remove a tool location override from a node",
		Long: `Remove a node-specific tool location override. The tool falls back to
its declared default home on that node.`,
		Example: `  tool-locator unset agent-1 jdk@jdk8
  tool-locator rm agent-1 jdk@jdk8`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnset(args[0], args[1])
		},
	}

	return cmd
}

// runUnset removes one override and saves the config.
func runUnset(nodeName, toolKey string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	nc, ok := cfg.Nodes[nodeName]
	if !ok {
		return fmt.Errorf("node '%s' not found", nodeName)
	}

	kept := nc.ToolLocations[:0]
	found := false
	for _, loc := range nc.ToolLocations {
		if loc.Key == toolKey {
			found = true
			continue
		}
		kept = append(kept, loc)
	}
	if !found {
		return fmt.Errorf("no override for '%s' on node '%s'", toolKey, nodeName)
	}
	nc.ToolLocations = kept

	configPath, err := config.GetDefaultConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Removed %s from '%s'\n", toolKey, nodeName)
	return nil
}
