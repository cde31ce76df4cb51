package redundancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/uselint/pkg/directive"
	"github.com/leapstack-labs/uselint/pkg/lint"
	_ "github.com/leapstack-labs/uselint/pkg/lint/rules" // register rules
)

func runRD01(t *testing.T, dirs []directive.Directive) []lint.Diagnostic {
	t.Helper()
	scope := &directive.Scope{Kind: directive.ScopeFile, Directives: dirs}
	analyzer := lint.NewAnalyzer(lint.NewConfig())

	var filtered []lint.Diagnostic
	for _, d := range analyzer.AnalyzeScope(scope) {
		if d.RuleID == "RD01" {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestRD01_DuplicateTarget(t *testing.T) {
	tests := []struct {
		name       string
		directives []directive.Directive
		wantCount  int
	}{
		{
			name: "no duplicates",
			directives: []directive.Directive{
				{Target: "System"},
				{Target: "System.Linq"},
			},
			wantCount: 0,
		},
		{
			name: "repeated target",
			directives: []directive.Directive{
				{Target: "System.Linq"},
				{Target: "System.Linq"},
			},
			wantCount: 1,
		},
		{
			name: "every repeat is flagged",
			directives: []directive.Directive{
				{Target: "System.Linq"},
				{Target: "System.Linq"},
				{Target: "System.Linq"},
			},
			wantCount: 2,
		},
		{
			name: "static and plain forms are distinct",
			directives: []directive.Directive{
				{Target: "System.Math"},
				{Target: "System.Math", Static: true},
			},
			wantCount: 0,
		},
		{
			name: "aliased repeat of a plain target",
			directives: []directive.Directive{
				{Target: "System.Linq"},
				{Alias: "L", Target: "System.Linq"},
			},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRD01(t, tt.directives)
			require.Len(t, diags, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Contains(t, diags[0].Message, "Duplicate using directive")
			}
		})
	}
}
