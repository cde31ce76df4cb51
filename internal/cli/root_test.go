package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/uselint/internal/cli/config"
	"github.com/leapstack-labs/uselint/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "uselint", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	// Persistent flags
	for _, flag := range []string{"config", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	// Subcommands
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"version", "check", "rules", "completion"} {
		assert.True(t, names[name], "subcommand %q should be registered", name)
	}
}

func TestCheckEndToEnd(t *testing.T) {
	t.Cleanup(config.ResetConfig)

	dump := filepath.Join(t.TempDir(), "dump.yaml")
	content := `path: src/widgets.cs
file:
  - alias: Project
    target: MyCompany.Project
    pos: {line: 1, column: 1}
  - target: System
    pos: {line: 2, column: 1}
`
	require.NoError(t, os.WriteFile(dump, []byte(content), 0o600))

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"check", dump, "--format", "json"})

	// Issues found means a non-nil error alongside the report
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lint issues found")

	var out output.LintOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Files, 1)
	assert.Equal(t, "src/widgets.cs", out.Files[0].Path)

	ids := make([]string, 0, len(out.Files[0].Diagnostics))
	for _, d := range out.Files[0].Diagnostics {
		ids = append(ids, d.RuleID)
	}
	assert.Contains(t, ids, "UD01")
	assert.Equal(t, 1, out.Summary.FilesAnalyzed)
	assert.GreaterOrEqual(t, out.Summary.Warnings, 1)
}

func TestCheckEndToEndClean(t *testing.T) {
	t.Cleanup(config.ResetConfig)

	dump := filepath.Join(t.TempDir(), "dump.yaml")
	content := `file:
  - target: System
    pos: {line: 1, column: 1}
  - alias: Project
    target: MyCompany.Project
    pos: {line: 2, column: 1}
`
	require.NoError(t, os.WriteFile(dump, []byte(content), 0o600))

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"check", dump})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No lint issues found")
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, config.DefaultSeverity, cfg.Severity)
}

func TestGetRendererFallback(t *testing.T) {
	r := GetRenderer(context.Background())
	require.NotNil(t, r)
}
