// Package lint provides a data-driven linting framework for import-style
// directives.
//
// # Architecture
//
// The package defines the shared contracts (Severity, Diagnostic, RuleDef,
// the Rule interface), a global registry, configuration, and the Analyzer
// that runs registered rules against one scope at a time. Rule
// implementations live in subpackages of pkg/lint/rules and register
// themselves via init():
//
//	import _ "github.com/leapstack-labs/uselint/pkg/lint/rules"
//
// # Rule Categories
//
//   - UD (Ordering): rules about the relative placement of directives
//   - RD (Redundancy): rules about directives that add nothing
//
// # Using the Registry
//
// Query all registered rules:
//
//	rules := lint.GetAll()
//	infos := lint.AllRules()
//
// Query rules by ID or group:
//
//	rule, ok := lint.GetByID("UD01")
//	groupRules := lint.GetByGroup("ordering")
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("RD01")
//	config.SetSeverity("UD02", lint.SeverityWarning)
//	config.SetRuleOptions("UD02", map[string]any{"case_sensitive": true})
//
// # Creating Custom Rules
//
// Define a RuleDef and register it from an init() function:
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "my.custom_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
