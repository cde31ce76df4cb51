package ordering

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/uselint/pkg/directive"
	"github.com/leapstack-labs/uselint/pkg/lint"
)

func init() {
	lint.Register(AliasSorted)
}

// AliasSorted warns about alias directives that are not sorted by alias name.
var AliasSorted = lint.RuleDef{
	ID:          "UD02",
	Name:        "ordering.alias_sorted",
	Group:       "ordering",
	Description: "Alias directives within a run are not ordered alphabetically by alias name.",
	Severity:    lint.SeverityHint,
	Check:       checkAliasSorted,
	ConfigKeys:  []string{"case_sensitive"},

	Rationale: `A sorted alias block lets readers scan for a name instead of reading every
line. Sorting only applies within a run of consecutive alias directives; a
plain directive starts a new run.`,

	BadExample: `using Zip = Project.Util.Compression;
using Db = Project.Data.Database;`,

	GoodExample: `using Db = Project.Data.Database;
using Zip = Project.Util.Compression;`,

	Fix: "Reorder the alias directives alphabetically by alias name.",
}

func checkAliasSorted(scope *directive.Scope, opts map[string]any) []lint.Diagnostic {
	caseSensitive := lint.GetBoolOption(opts, "case_sensitive", false)

	var diagnostics []lint.Diagnostic
	prev := ""
	for _, d := range scope.Directives {
		if !d.HasAlias() {
			prev = ""
			continue
		}

		cur, cmp := d.Alias, prev
		if !caseSensitive {
			cur, cmp = strings.ToLower(cur), strings.ToLower(cmp)
		}
		if prev != "" && cur < cmp {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:           "UD02",
				Severity:         lint.SeverityHint,
				Message:          fmt.Sprintf("Using alias directive for '%s' should appear before directive for '%s'", d.Alias, prev),
				Pos:              d.Pos,
				DocumentationURL: lint.BuildDocURL("UD02"),
				ImpactScore:      lint.ImpactLow.Int(),
			})
		}
		prev = d.Alias
	}
	return diagnostics
}
