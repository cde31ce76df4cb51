package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "uselint v1.2.3")
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"group", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommandListJSON(t *testing.T) {
	cmd := NewRulesCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--format", "json"})
	require.NoError(t, cmd.Execute())

	var out RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, len(out.Rules), out.Count)

	ids := make([]string, 0, len(out.Rules))
	for _, r := range out.Rules {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "UD01")
	assert.Contains(t, ids, "UD02")
	assert.Contains(t, ids, "RD01")
}

func TestRulesCommandShowRule(t *testing.T) {
	cmd := NewRulesCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"UD01", "--format", "markdown"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "UD01")
	assert.Contains(t, out, "ordering.alias_placement")
}

func TestRulesCommandUnknownRule(t *testing.T) {
	cmd := NewRulesCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"XX99"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not found"))
}
