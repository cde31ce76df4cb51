package ordering

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/uselint/pkg/directive"
	"github.com/leapstack-labs/uselint/pkg/lint"
)

func init() {
	lint.Register(AliasPlacement)
}

// AliasPlacement reports alias directives placed before plain directives.
var AliasPlacement = lint.RuleDef{
	ID:          "UD01",
	Name:        "ordering.alias_placement",
	Group:       "ordering",
	Description: "Using alias directive appears before a plain using directive in the same scope.",
	Severity:    lint.SeverityWarning,
	Check:       checkAliasPlacement,

	Rationale: `Alias directives rename what later directives may refer to, so readers expect
them at the end of the directive block. An alias sitting above plain directives
is easy to miss and makes the shadowing harder to spot.`,

	BadExample: `using Db = Project.Data.Database;
using System.Linq;`,

	GoodExample: `using System.Linq;
using Db = Project.Data.Database;`,

	Fix: "Move alias directives below all plain using directives in the scope.",
}

// checkAliasPlacement walks the scope once, left to right. An alias directive
// that is not the final directive of the scope stays pending until the next
// non-alias directive is reached: a plain directive turns every pending alias
// into a violation, a static import dismisses them. A directive with no
// alias, or the final directive of the scope regardless of alias, is never a
// violation and becomes the anchor; every finding in the scope is reported
// against the one anchor left standing after the scan, so all diagnostics
// from a call share the same "must appear after" name, even when a flagged
// alias has a nearer plain successor.
//
// Directives must be in source order; re-sorting would change which
// violations are detected.
func checkAliasPlacement(scope *directive.Scope, _ map[string]any) []lint.Diagnostic {
	ds := scope.Directives

	var flagged []int // violations, in source order
	var pending []int // alias directives awaiting their next non-alias directive
	anchor := -1

	for i, d := range ds {
		if d.HasAlias() && i < len(ds)-1 {
			pending = append(pending, i)
			continue
		}

		// No alias, or a lone trailing alias with nothing after it: this
		// directive is never a violation and becomes the anchor.
		anchor = i

		if !d.HasAlias() {
			if !d.Static {
				flagged = append(flagged, pending...)
			}
			// A static import exempts the aliases before it either way.
			pending = nil
		}
	}

	if len(flagged) == 0 || anchor < 0 {
		return nil
	}

	name := unqualifiedName(ds[anchor].Target)
	diagnostics := make([]lint.Diagnostic, 0, len(flagged))
	for _, i := range flagged {
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:           "UD01",
			Severity:         lint.SeverityWarning,
			Message:          fmt.Sprintf("Using alias directive for '%s' must appear after directive for '%s'", ds[i].Alias, name),
			Pos:              ds[i].Pos,
			DocumentationURL: lint.BuildDocURL("UD01"),
			ImpactScore:      lint.ImpactMedium.Int(),
		})
	}
	return diagnostics
}

// unqualifiedName strips a leading "name::" alias qualifier from a target,
// keeping the part after the first occurrence.
func unqualifiedName(target string) string {
	if i := strings.Index(target, "::"); i >= 0 {
		return target[i+2:]
	}
	return target
}
