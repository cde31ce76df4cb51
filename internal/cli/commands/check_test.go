package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/uselint/internal/cli/config"
	"github.com/leapstack-labs/uselint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"format", "disable", "severity", "rule"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		opts := &CheckOptions{}
		cfg := buildLintConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("UD01"))
	})

	t.Run("disable rules", func(t *testing.T) {
		opts := &CheckOptions{
			Disable: []string{"UD01", "RD01"},
		}
		cfg := buildLintConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("UD01"))
		assert.True(t, cfg.IsDisabled("RD01"))
		assert.False(t, cfg.IsDisabled("UD02"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		opts := &CheckOptions{
			Rules: []string{"UD01"},
		}
		cfg := buildLintConfig(nil, opts)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("UD01"))
		for _, r := range lint.GetAll() {
			if r.ID() != "UD01" {
				assert.True(t, cfg.IsDisabled(r.ID()), "rule %q should be disabled", r.ID())
			}
		}
	})

	t.Run("project config disabled rules", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"RD01"},
			},
		}
		opts := &CheckOptions{}
		cfg := buildLintConfig(projectCfg, opts)

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("RD01"))
		assert.False(t, cfg.IsDisabled("UD01"))
	})

	t.Run("project config severity overrides", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Severity: map[string]string{
					"UD01": "error",
					"UD02": "info",
				},
			},
		}
		opts := &CheckOptions{}
		cfg := buildLintConfig(projectCfg, opts)

		require.NotNil(t, cfg)
		assert.Equal(t, lint.SeverityError, cfg.GetSeverity("UD01", lint.SeverityWarning))
		assert.Equal(t, lint.SeverityInfo, cfg.GetSeverity("UD02", lint.SeverityHint))
		assert.Equal(t, lint.SeverityInfo, cfg.GetSeverity("RD01", lint.SeverityInfo))
	})

	t.Run("project config rule options", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Rules: map[string]config.RuleOptions{
					"UD02": {"case_sensitive": true},
				},
			},
		}
		opts := &CheckOptions{}
		cfg := buildLintConfig(projectCfg, opts)

		require.NotNil(t, cfg)
		ud02Opts := cfg.GetRuleOptions("UD02")
		require.NotNil(t, ud02Opts)
		assert.Equal(t, true, ud02Opts["case_sensitive"])
	})

	t.Run("CLI overrides project config", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"UD01"},
			},
		}
		opts := &CheckOptions{
			Disable: []string{"UD02"},
		}
		cfg := buildLintConfig(projectCfg, opts)

		require.NotNil(t, cfg)
		assert.True(t, cfg.IsDisabled("UD01"))
		assert.True(t, cfg.IsDisabled("UD02"))
	})
}

func TestFilterBySeverity(t *testing.T) {
	results := []lintFileResult{
		{
			Path: "dump.yaml",
			Diagnostics: []lint.Diagnostic{
				{RuleID: "UD01", Severity: lint.SeverityWarning, Message: "warning"},
				{RuleID: "RD01", Severity: lint.SeverityInfo, Message: "info"},
				{RuleID: "UD02", Severity: lint.SeverityHint, Message: "hint"},
			},
		},
	}

	t.Run("warning threshold", func(t *testing.T) {
		filtered := filterBySeverity(results, "warning")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 1)
		assert.Equal(t, lint.SeverityWarning, filtered[0].Diagnostics[0].Severity)
	})

	t.Run("info threshold", func(t *testing.T) {
		filtered := filterBySeverity(results, "info")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 2)
	})

	t.Run("hint threshold", func(t *testing.T) {
		filtered := filterBySeverity(results, "hint")
		require.Len(t, filtered, 1)
		assert.Len(t, filtered[0].Diagnostics, 3)
	})

	t.Run("empty results when all below threshold", func(t *testing.T) {
		hintsOnly := []lintFileResult{
			{
				Path: "dump.yaml",
				Diagnostics: []lint.Diagnostic{
					{RuleID: "UD02", Severity: lint.SeverityHint, Message: "hint"},
				},
			},
		}
		filtered := filterBySeverity(hintsOnly, "error")
		assert.Empty(t, filtered)
	})
}

func TestCollectDumpFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("file: []\n"), 0o600))
		return path
	}
	a := write("a.yaml")
	b := write("nested/b.json")
	write("c.txt") // ignored

	t.Run("walks directories for dump files", func(t *testing.T) {
		files, err := collectDumpFiles([]string{dir})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, files)
	})

	t.Run("explicit files pass through", func(t *testing.T) {
		files, err := collectDumpFiles([]string{a})
		require.NoError(t, err)
		assert.Equal(t, []string{a}, files)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := collectDumpFiles([]string{filepath.Join(dir, "absent.yaml")})
		assert.Error(t, err)
	})
}
