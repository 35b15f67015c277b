/*
Package main is the entry point for the tool-locator CLI.

tool-locator manages per-node overrides of shared tool installations in a
distributed build fleet: a central configuration declares named tool
installations with default home paths, and individual agent nodes may have
the same tool installed somewhere else.

Usage:
  tool-locator [command]

Available Commands:
  list        List fleet nodes and their tool overrides
  tools       List shared tool installations
  resolve     Resolve the effective home of a tool on a node
  set         Set a tool location override on a node
  unset       Remove a tool location override from a node
  verify      Verify configuration and flag stale overrides
  search      Search installations and overrides
  history     Show the resolution audit log
  export-map  Export the effective tool map for bash/grep use
  version     Show version information
  help        Help about any command

Examples:
  # Where does jdk8 live on agent-1?
  tool-locator resolve agent-1 jdk@jdk8

  # Override it
  tool-locator set agent-1 jdk@jdk8 /opt/jdk8
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvmk/tool-locator/internal/cli"
	"github.com/hvmk/tool-locator/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tool-locator",
		Short: "Per-node tool location overrides for a build fleet",
		Long: `tool-locator resolves where a tool installation lives on each node of a
distributed build fleet.

A shared configuration declares typed, named tool installations with default
home paths. Agent nodes may override the home for a specific installation;
resolution falls back to the default when no override is configured, which
is the common case and never an error.

Tools are addressed by a "type@name" compound key, e.g. jdk@jdk8.`,
		Version: version.GetVersion(),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewListCmd())
	rootCmd.AddCommand(cli.NewToolsCmd())
	rootCmd.AddCommand(cli.NewResolveCmd())
	rootCmd.AddCommand(cli.NewSetCmd())
	rootCmd.AddCommand(cli.NewUnsetCmd())
	rootCmd.AddCommand(cli.NewVerifyCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewExportMapCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
