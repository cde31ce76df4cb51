package lint

import "github.com/leapstack-labs/uselint/pkg/directive"

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "UD01"
	Name        string    // Human-readable name, e.g., "ordering.alias_placement"
	Group       string    // Category, e.g., "ordering", "redundancy"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one scope and returns diagnostics.
//
// The scope's directives must be in true source order; the check never
// re-sorts them. The opts parameter contains rule-specific options from
// configuration.
type CheckFunc func(scope *directive.Scope, opts map[string]any) []Diagnostic

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "UD01"
	ID() string

	// Name returns the human-readable name, e.g., "ordering.alias_placement"
	Name() string

	// Group returns the category, e.g., "ordering", "redundancy"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)

	// CheckScope analyzes one scope and returns diagnostics.
	CheckScope(scope *directive.Scope, opts map[string]any) []Diagnostic
}

// RuleInfo provides metadata about a rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	return RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                { return w.def.ID }
func (w *wrappedRuleDef) Name() string              { return w.def.Name }
func (w *wrappedRuleDef) Group() string             { return w.def.Group }
func (w *wrappedRuleDef) Description() string       { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string      { return w.def.ConfigKeys }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckScope(scope *directive.Scope, opts map[string]any) []Diagnostic {
	return w.def.Check(scope, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
