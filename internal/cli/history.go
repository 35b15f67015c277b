package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/storage"
)

// NewHistoryCmd creates the 'history' command for the resolution audit log.
func NewHistoryCmd() *cobra.Command {
	var since time.Duration
	var limit int

	cmd := &cobra.Command{
		Use:   "history [node]",
		Short: "Show the resolution audit log",
		Long: `Display recent tool home resolutions, newest first. With a node
argument, only that node's resolutions are shown.`,
		Example: `  tool-locator history
  tool-locator history agent-1
  tool-locator history --since 24h --limit 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeName := ""
			if len(args) == 1 {
				nodeName = args[0]
			}
			return runHistory(nodeName, since, limit)
		},
	}

	cmd.Flags().DurationVar(&since, "since", 7*24*time.Hour, "How far back to look")
	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum number of entries")

	return cmd
}

// runHistory prints recent resolution events.
func runHistory(nodeName string, since time.Duration, limit int) error {
	store := storage.NewStorage()
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer store.Close()

	events, err := store.GetResolutionHistory(nodeName, time.Now().Add(-since))
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No resolutions recorded.")
		return nil
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	fmt.Printf("Resolutions (%d):\n\n", len(events))

	for _, e := range events {
		source := "default"
		if e.Overridden {
			source = "override"
		}
		fmt.Printf("  %s  %s  %s → %s (%s)\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Node, e.ToolKey, e.Home, source)
	}

	return nil
}
