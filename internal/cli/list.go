package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/config"
	"github.com/hvmk/tool-locator/internal/tools"
)

// NewListCmd creates the 'list' command for listing fleet nodes and their
// overrides.
func NewListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List fleet nodes and their tool overrides",
		Long:    `Display all fleet nodes declared in ~/.tool-locator.json with their tool location overrides.`,
		Example: `  tool-locator list
  tool-locator ls
  tool-locator list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// nodeListing is one node as rendered by --json output.
type nodeListing struct {
	Node      string        `json:"node"`
	Kind      string        `json:"kind"`
	Overrides []tools.Entry `json:"overrides,omitempty"`
}

// runList displays all fleet nodes and their overrides.
func runList(jsonOutput bool) error {
	ws, err := loadWorkspace()
	if err != nil {
		fmt.Println("No fleet configured.")
		fmt.Println("Create ~/.tool-locator.json to declare tool types, installations and nodes.")
		return nil
	}

	if len(ws.fleet) == 0 {
		fmt.Println("No nodes configured.")
		return nil
	}

	names := config.SortedNodeNames(ws.cfg)

	if jsonOutput {
		listings := make([]nodeListing, 0, len(names))
		for _, name := range names {
			n := ws.fleet[name]
			listing := nodeListing{Node: name, Kind: string(n.Kind())}
			if p := n.ToolOverrides(); p != nil {
				listing.Overrides = p.Entries(ws.reg)
			}
			listings = append(listings, listing)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	fmt.Printf("Fleet nodes (%d):\n\n", len(names))

	for _, name := range names {
		n := ws.fleet[name]
		fmt.Printf("  %s (%s)\n", name, n.Kind())

		p := n.ToolOverrides()
		if p == nil {
			fmt.Printf("    No overrides; tools use their default homes.\n\n")
			continue
		}

		entries := p.Entries(ws.reg)
		if len(entries) == 0 {
			fmt.Printf("    Empty override set.\n\n")
			continue
		}

		for _, e := range entries {
			if e.Unresolved {
				fmt.Printf("    ✗ %s → %s (unknown tool type)\n", e.Key, e.Home)
			} else {
				fmt.Printf("    ✓ %s → %s\n", e.Key, e.Home)
			}
		}
		fmt.Println()
	}

	return nil
}
