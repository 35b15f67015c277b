package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/search"
)

// NewSearchCmd creates the 'search' command for searching the fleet's tools.
func NewSearchCmd() *cobra.Command {
	var nodeName string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search installations and overrides",
		Long: `Keyword search across shared tool installations and per-node overrides.
The index is rebuilt from the configuration on every invocation.`,
		Example: `  tool-locator search jdk
  tool-locator search /opt --node agent-1
  tool-locator search maven --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], nodeName, limit)
		},
	}

	cmd.Flags().StringVarP(&nodeName, "node", "n", "", "Restrict search to one node's overrides")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of results")

	return cmd
}

// runSearch builds the index and prints ranked results.
func runSearch(query, nodeName string, limit int) error {
	ws, err := loadWorkspace()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	indexer, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	defer indexer.Close()

	if err := indexer.IndexFleet(ws.installs, ws.fleet, ws.reg); err != nil {
		return fmt.Errorf("failed to index fleet: %w", err)
	}

	var results []search.Result
	if nodeName != "" {
		results, err = indexer.SearchNode(query, nodeName, limit)
	} else {
		results, err = indexer.Search(query, limit)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	fmt.Printf("Found %d result(s):\n\n", len(results))

	for _, r := range results {
		if r.Kind == "override" {
			fmt.Printf("  %s on %s → %s (override, score %.2f)\n", r.Key, r.Node, r.Home, r.Score)
		} else {
			fmt.Printf("  %s → %s (%s, score %.2f)\n", r.Key, r.Home, r.Type, r.Score)
		}
	}

	return nil
}
