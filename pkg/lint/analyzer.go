package lint

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/uselint/pkg/directive"
)

// Analyzer runs registered lint rules against directive scopes.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeScope runs all registered rules against one scope.
//
// Each call is self-contained: the analyzer keeps no state between scopes,
// so independent scopes may be analyzed concurrently.
func (a *Analyzer) AnalyzeScope(scope *directive.Scope) []Diagnostic {
	if scope == nil {
		return nil
	}

	rules := GetAll()
	// Stable rule order keeps output deterministic across runs.
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })

	var diagnostics []Diagnostic
	for _, rule := range rules {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID())
		diags := rule.CheckScope(scope, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}

// AnalyzeDocument runs all rules against each scope of a document, file
// scope first. Scopes are analyzed independently; findings never cross
// scope boundaries.
func (a *Analyzer) AnalyzeDocument(doc *directive.Document) []Diagnostic {
	if doc == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, scope := range doc.Scopes() {
		diagnostics = append(diagnostics, a.AnalyzeScope(&scope)...)
	}
	return diagnostics
}

// AnalyzeAll analyzes multiple documents concurrently. Results are returned
// in input order, one diagnostic slice per document.
func (a *Analyzer) AnalyzeAll(ctx context.Context, docs []*directive.Document) ([][]Diagnostic, error) {
	results := make([][]Diagnostic, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.AnalyzeDocument(doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
