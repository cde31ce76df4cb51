// Package redundancy contains lint rules about using directives that add
// nothing to the scope.
package redundancy

import (
	"fmt"

	"github.com/leapstack-labs/uselint/pkg/directive"
	"github.com/leapstack-labs/uselint/pkg/lint"
)

func init() {
	lint.Register(DuplicateTarget)
}

// DuplicateTarget reports directives whose target already appeared earlier
// in the same scope.
var DuplicateTarget = lint.RuleDef{
	ID:          "RD01",
	Name:        "redundancy.duplicate_target",
	Group:       "redundancy",
	Description: "Using directive repeats a target already imported in the same scope.",
	Severity:    lint.SeverityInfo,
	Check:       checkDuplicateTarget,

	Rationale: `A repeated using directive is dead weight, usually left behind by a merge or
copy-paste. A static directive for the same target is not a duplicate of a
plain one; the two import different things.`,

	BadExample: `using System.Linq;
using System.Linq;`,

	GoodExample: `using System.Linq;`,

	Fix: "Remove the repeated directive.",
}

func checkDuplicateTarget(scope *directive.Scope, _ map[string]any) []lint.Diagnostic {
	type key struct {
		target string
		static bool
	}

	seen := make(map[key]bool)
	var diagnostics []lint.Diagnostic
	for _, d := range scope.Directives {
		k := key{target: d.Target, static: d.Static}
		if seen[k] {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:           "RD01",
				Severity:         lint.SeverityInfo,
				Message:          fmt.Sprintf("Duplicate using directive for '%s'", d.Target),
				Pos:              d.Pos,
				DocumentationURL: lint.BuildDocURL("RD01"),
				ImpactScore:      lint.ImpactLow.Int(),
			})
			continue
		}
		seen[k] = true
	}
	return diagnostics
}
