package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/config"
)

// NewVerifyCmd creates the 'verify' command for verifying configuration.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify configuration and flag stale overrides",
		Long: `Verify that the configuration is valid and report overrides that
reference tool types no longer declared. Stale overrides never fail a build;
resolution simply skips them. They are reported here so they can be fixed.`,
		Example: `  tool-locator verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}

	return cmd
}

// runVerify validates the configuration.
func runVerify() error {
	configPath, err := config.GetDefaultConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	ws, err := loadWorkspace()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if err := config.Validate(ws.cfg); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	fmt.Printf("✓ Config file: %s\n", configPath)
	fmt.Printf("✓ Tool types declared: %d\n", len(ws.cfg.ToolTypes))
	fmt.Printf("✓ Installations declared: %d\n", len(ws.installs))
	fmt.Printf("✓ Fleet nodes: %d\n", len(ws.fleet))

	stale := 0
	for _, name := range config.SortedNodeNames(ws.cfg) {
		n := ws.fleet[name]
		p := n.ToolOverrides()
		if p == nil {
			continue
		}
		for _, e := range p.Entries(ws.reg) {
			if e.Unresolved {
				fmt.Printf("✗ %s: override %s references an unknown tool type\n", name, e.Key)
				stale++
			}
		}
	}

	if stale > 0 {
		fmt.Printf("\n%d stale override(s) found. They never match a live installation;\n", stale)
		fmt.Println("remove them with 'tool-locator unset' or re-declare the tool type.")
	}

	return nil
}
