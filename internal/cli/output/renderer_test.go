package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererUnknownModeIsAuto(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, Mode("bogus"))
	// A plain buffer is not a terminal, so auto resolves to markdown
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestEffectiveModeExplicit(t *testing.T) {
	var buf bytes.Buffer
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r := NewRenderer(&buf, &buf, mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)

	in := LintOutput{
		Summary: LintSummary{FilesAnalyzed: 1, TotalIssues: 2, Warnings: 2},
		Files: []LintFileResult{
			{Path: "a.yaml", Diagnostics: []LintDiagnostic{
				{RuleID: "UD01", Severity: "warning", Message: "m", Line: 3, Column: 1},
			}},
		},
	}
	require.NoError(t, r.JSON(in))

	var out LintOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestRendererSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeMarkdown)
	r.Success("done")
	// No checkmark prefix outside text mode
	assert.Equal(t, "done\n", buf.String())
}

func TestRendererWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Println("hello")
	r.Printf("%d\n", 42)
	assert.Equal(t, "hello\n42\n", out.String())
	assert.Same(t, &out, r.Writer())
	assert.Same(t, &errOut, r.ErrWriter())
}
