package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewResolveCmd(t *testing.T) {
	cmd := NewResolveCmd()

	if cmd == nil {
		t.Fatal("NewResolveCmd() returned nil")
	}

	if !strings.HasPrefix(cmd.Use, "resolve") {
		t.Errorf("Expected Use to start with 'resolve', got %q", cmd.Use)
	}

	if cmd.Flags().Lookup("no-record") == nil {
		t.Error("Flag 'no-record' not registered")
	}
}

func TestResolveCommandArgValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"one arg", []string{"agent-1"}, true},
		{"help flag", []string{"--help"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewResolveCmd()
			cmd.SetArgs(tt.args)

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			err := cmd.Execute()

			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSetCmdArgValidation(t *testing.T) {
	cmd := NewSetCmd()
	cmd.SetArgs([]string{"agent-1", "jdk@jdk8"})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Error("set with two args should fail (home path required)")
	}
}

func TestNewUnsetCmdAliases(t *testing.T) {
	cmd := NewUnsetCmd()

	aliases := cmd.Aliases
	if len(aliases) == 0 || aliases[0] != "rm" {
		t.Errorf("Expected alias 'rm', got %v", aliases)
	}
}
