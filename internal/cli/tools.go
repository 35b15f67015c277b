package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewToolsCmd creates the 'tools' command for listing shared installations.
func NewToolsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List shared tool installations",
		Long:  `Display the shared tool installations and their default home directories.`,
		Example: `  tool-locator tools
  tool-locator tools --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// installationListing is one installation as rendered by --json output.
type installationListing struct {
	Key         string `json:"key"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	DefaultHome string `json:"defaultHome"`
}

// runTools displays all shared installations.
func runTools(jsonOutput bool) error {
	ws, err := loadWorkspace()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(ws.installs) == 0 {
		fmt.Println("No tool installations declared.")
		return nil
	}

	if jsonOutput {
		listings := make([]installationListing, 0, len(ws.installs))
		for _, inst := range ws.installs {
			listings = append(listings, installationListing{
				Key:         inst.Key(),
				Type:        inst.Descriptor().DisplayName,
				Name:        inst.Name(),
				DefaultHome: inst.Home(),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	fmt.Printf("Tool installations (%d):\n\n", len(ws.installs))

	for _, inst := range ws.installs {
		fmt.Printf("  %s\n", inst.Key())
		fmt.Printf("    Type:    %s\n", inst.Descriptor().DisplayName)
		fmt.Printf("    Default: %s\n", inst.Home())
		fmt.Println()
	}

	return nil
}
