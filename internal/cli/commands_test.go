package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/core/resource"
)

func findFlag(t *testing.T, cmd *cobra.Command, name string) {
	t.Helper()
	if cmd.Flags().Lookup(name) == nil {
		t.Errorf("%s: missing --%s flag", cmd.Name(), name)
	}
}

func TestCommandStructure(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{InitCmd(), "init", []string{"force", "sample"}},
		{ValidateCmd(), "validate <file>", nil},
		{PreviewCmd(), "preview <file>", []string{"up", "down", "watch"}},
		{GenerateCmd(), "generate <file>", []string{"out", "zip", "dry-run", "no-history", "name"}},
		{TranslateCmd(), "translate <file>", []string{"write", "all"}},
		{HistoryCmd(), "history", []string{"limit"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			if tt.cmd.Use != tt.use {
				t.Errorf("Use = %q, want %q", tt.cmd.Use, tt.use)
			}
			if tt.cmd.Short == "" {
				t.Error("command should have a Short description")
			}
			for _, f := range tt.flags {
				findFlag(t, tt.cmd, f)
			}
		})
	}
}

func TestFileCommandsRequireOneArg(t *testing.T) {
	for _, cmd := range []*cobra.Command{ValidateCmd(), PreviewCmd(), GenerateCmd(), TranslateCmd()} {
		if err := cmd.Args(cmd, nil); err == nil {
			t.Errorf("%s: expected error without a file argument", cmd.Name())
		}
		if err := cmd.Args(cmd, []string{"a.yaml"}); err != nil {
			t.Errorf("%s: unexpected error with one argument: %v", cmd.Name(), err)
		}
	}
}

func TestHistoryCmdSubcommands(t *testing.T) {
	history := HistoryCmd()

	want := map[string]bool{"list": false, "show <id>": false}
	for _, sub := range history.Commands() {
		if _, ok := want[sub.Use]; ok {
			want[sub.Use] = true
		}
	}
	for use, found := range want {
		if !found {
			t.Errorf("history subcommand %q not registered", use)
		}
	}
}

func TestSampleDescriptionIsValid(t *testing.T) {
	if err := resource.Validate(sampleDescription()); err != nil {
		t.Errorf("sample description should be valid: %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	if !isValidationError(resource.ValidationErrors{{Field: "name", Message: "x"}}) {
		t.Error("ValidationErrors should be recognised")
	}
	if isValidationError(errInvalid) {
		t.Error("plain error should not be a validation error")
	}
}
