package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/hvmk/tool-locator/internal/config"
	"github.com/hvmk/tool-locator/internal/tools"
)

// MapEntry represents one (node, tool) pair in the exported map.
type MapEntry struct {
	Node       string `json:"node"`
	Tool       string `json:"tool"`
	Type       string `json:"type"`
	Home       string `json:"home"`
	Overridden bool   `json:"overridden"`
}

// NewExportMapCmd creates the export-map command.
func NewExportMapCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export-map",
		Short: "Export the effective tool map for bash/grep use",
		Long: `Generate ~/.tool-locator-map.jsonl with the effective home of every
tool installation on every agent node, after applying overrides.

The map enables fast command-line lookups without invoking the resolver.

Default output: ~/.tool-locator-map.jsonl
Default format: JSONL (one entry per line)`,
		Example: `  # Export to default location
  tool-locator export-map

  # Export as JSON array
  tool-locator export-map --format json

  # Custom output path
  tool-locator export-map --output ./toolmap.jsonl

Grep usage examples:
  # Effective JDK homes across the fleet
  grep '"jdk@' ~/.tool-locator-map.jsonl

  # Homes on one node
  grep '"agent-1"' ~/.tool-locator-map.jsonl | jq -r '.home'

  # Which pairs are overridden
  cat ~/.tool-locator-map.jsonl | jq 'select(.overridden)'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportMap(format, output)
		},
	}

	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format: json or jsonl")
	cmd.Flags().StringVar(&output, "output", "", "Output path (default: ~/.tool-locator-map.jsonl)")

	return cmd
}

// runExportMap executes the export-map command.
func runExportMap(format, output string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(ws.installs) == 0 {
		fmt.Println("No tool installations declared.")
		return nil
	}

	// Default output path
	if output == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		ext := ".jsonl"
		if format == "json" {
			ext = ".json"
		}
		output = filepath.Join(home, ".tool-locator-map"+ext)
	}

	// Acquire file lock to prevent concurrent writes
	lockFile, err := acquireFileLock(output)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer releaseFileLock(lockFile)

	var entries []MapEntry
	for _, name := range config.SortedNodeNames(ws.cfg) {
		n := ws.fleet[name]
		if !n.Kind().CanHoldToolOverrides() {
			continue
		}
		for _, inst := range ws.installs {
			home := tools.ResolveHome(n, inst)
			overridden := false
			if p := n.ToolOverrides(); p != nil {
				_, overridden = p.HomeFor(inst)
			}
			entries = append(entries, MapEntry{
				Node:       name,
				Tool:       inst.Key(),
				Type:       inst.Descriptor().DisplayName,
				Home:       home,
				Overridden: overridden,
			})
		}
	}

	return writeMap(entries, output, format)
}

// writeMap writes the tool map to a file.
func writeMap(entries []MapEntry, path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create map file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if format == "json" {
		// JSON array format
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode map: %w", err)
		}
	} else {
		// JSONL format (one per line)
		for _, entry := range entries {
			if err := encoder.Encode(entry); err != nil {
				return fmt.Errorf("failed to encode entry: %w", err)
			}
		}
	}

	fmt.Printf("✓ Exported %d entries to %s\n", len(entries), path)
	return nil
}

// acquireFileLock acquires an exclusive lock on the map file.
func acquireFileLock(path string) (*os.File, error) {
	lockPath := path + ".lock"
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	// Try to acquire exclusive lock (non-blocking)
	err = unix.Flock(int(lockFile.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		lockFile.Close()
		return nil, fmt.Errorf("failed to acquire lock (another export in progress?): %w", err)
	}

	return lockFile, nil
}

// releaseFileLock releases the file lock and removes the lock file.
func releaseFileLock(lockFile *os.File) error {
	if lockFile == nil {
		return nil
	}

	lockPath := lockFile.Name()

	// Release lock
	unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
	lockFile.Close()

	// Remove lock file
	return os.Remove(lockPath)
}
