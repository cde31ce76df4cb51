// Package directive models the parsed import-style directives consumed by
// the lint rules.
//
// Directive records are produced by a host parser and delivered per lexical
// scope: the file scope, then each nested namespace scope, each analyzed
// independently. This package only models and decodes already-parsed
// records; it never parses source text.
package directive

import "github.com/leapstack-labs/uselint/pkg/token"

// ScopeKind distinguishes the lexical level a scope was captured at.
type ScopeKind int

// Scope kinds.
const (
	// ScopeFile is the top-level scope of a source file.
	ScopeFile ScopeKind = iota
	// ScopeNamespace is a nested namespace-like scope.
	ScopeNamespace
)

// String returns the string representation of the scope kind.
func (k ScopeKind) String() string {
	switch k {
	case ScopeFile:
		return "file"
	case ScopeNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// Directive represents one import-style statement in source order.
//
// An empty Alias means the directive binds no alias. Target is the imported
// namespace or type path and may carry a "name::" qualifier prefix.
type Directive struct {
	Alias  string         `yaml:"alias,omitempty" json:"alias,omitempty"`
	Target string         `yaml:"target" json:"target"`
	Static bool           `yaml:"static,omitempty" json:"static,omitempty"`
	Pos    token.Position `yaml:"pos,omitempty" json:"pos,omitempty"`
}

// HasAlias reports whether the directive binds a name alias.
func (d Directive) HasAlias() bool {
	return d.Alias != ""
}

// Scope is the ordered sequence of directives from one lexical region.
//
// Directives must be in true source order; rules depend on it and never
// re-sort. A scope carries no relationship to any other scope.
type Scope struct {
	Kind       ScopeKind
	Name       string // namespace path; empty for the file scope
	Directives []Directive
}
