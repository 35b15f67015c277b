package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/storage"
	"github.com/hvmk/tool-locator/internal/tools"
)

// NewResolveCmd creates the 'resolve' command, the single read entry point
// used to decide where to invoke a tool on a given node.
func NewResolveCmd() *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "resolve <node> <type@name>",
		Short: "Resolve the effective home of a tool on a node",
		Long: `Resolve the effective home directory for a tool installation on a
fleet node.

If the node carries a matching override, its home path is printed; otherwise
the installation's declared default home is used. A node with no overrides
configured is the normal case, not an error.`,
		Example: `  tool-locator resolve agent-1 jdk@jdk8
  tool-locator resolve agent-2 jdk@jdk11 --no-record`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], args[1], noRecord)
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip writing to the resolution audit log")

	return cmd
}

// runResolve resolves and prints the effective home for (node, tool key).
func runResolve(nodeName, toolKey string, noRecord bool) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	n, ok := ws.fleet[nodeName]
	if !ok {
		return fmt.Errorf("node '%s' not found", nodeName)
	}

	inst, ok := tools.FindInstallation(ws.installs, toolKey)
	if !ok {
		return fmt.Errorf("installation '%s' not found", toolKey)
	}

	home := tools.ResolveHome(n, inst)

	overridden := false
	if p := n.ToolOverrides(); p != nil {
		_, overridden = p.HomeFor(inst)
	}

	// Best-effort audit; never affects the result.
	if !noRecord {
		recordResolution(storage.ResolutionEvent{
			Node:       nodeName,
			ToolKey:    toolKey,
			Home:       home,
			Overridden: overridden,
			Timestamp:  time.Now(),
		})
	}

	fmt.Println(home)
	return nil
}

// recordResolution writes one event to the audit log, ignoring failures.
func recordResolution(event storage.ResolutionEvent) {
	store := storage.NewStorage()
	if err := store.Init(); err != nil {
		return
	}
	defer store.Close()

	_ = store.RecordResolution(event)
}
