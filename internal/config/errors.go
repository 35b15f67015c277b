package config

import "fmt"

// ConfigNotFoundError means no fleet configuration exists yet at Path.
// The CLI treats this as "nothing declared", not as corruption.
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("fleet config not found: %s\n\n💡 %s", e.Path, e.Hint)
}

// PermissionError reports a fleet config file that cannot be read or
// written with the current permissions.
type PermissionError struct {
	Path    string
	Op      string // "read" or "write"
	Fix     string // suggested fix command (chmod/chown)
	Details string
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("permission denied (cannot %s fleet config): %s\n", e.Op, e.Path)
	if e.Details != "" {
		msg += e.Details + "\n"
	}
	msg += "💡 Fix: " + e.Fix
	return msg
}

// InvalidConfigError reports a fleet config that exists but does not
// hold up: bad JSON, an installation referencing an undeclared tool
// type, a malformed override key, a controller carrying overrides.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid fleet config: %s\n", e.Path)
	if e.Message != "" {
		msg += e.Message + "\n"
	}
	if e.Hint != "" {
		msg += "💡 " + e.Hint
	}
	return msg
}
