package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/uselint/internal/cli/config"
	"github.com/leapstack-labs/uselint/internal/cli/output"
	"github.com/leapstack-labs/uselint/pkg/directive"
	"github.com/leapstack-labs/uselint/pkg/lint"
	_ "github.com/leapstack-labs/uselint/pkg/lint/rules" // register built-in rules
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths    []string // Dump files or directories
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Run lint rules on directive dumps",
		Long: `Analyze directive dumps for using directive issues.

Each dump file (YAML or JSON) describes the using directives of one
source file, grouped by lexical scope. Directories are walked for
.yaml, .yml, and .json files. Rules can be configured in uselint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check a single dump
  uselint check dump.yaml

  # Check every dump under a directory
  uselint check ./dumps

  # Output as JSON
  uselint check dump.yaml --format json

  # Disable specific rules
  uselint check dump.yaml --disable UD02,RD01

  # Only report warnings and errors
  uselint check dump.yaml --severity warning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", config.DefaultSeverity, "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cfg := config.GetCurrentConfig()
	r := newRenderer(cmd, cfg, opts.Format)
	logger := config.GetLogger(cmd.Context())

	// Resolve paths to dump files
	files, err := collectDumpFiles(opts.Paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no dump files found in %s", strings.Join(opts.Paths, ", "))
	}

	// Load documents
	docs := make([]*directive.Document, 0, len(files))
	for _, path := range files {
		doc, err := directive.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	logger.Debug("loaded dump files", "count", len(docs))

	// Build lint config from project config + CLI flags
	lintCfg := buildLintConfig(cfg, opts)
	analyzer := lint.NewAnalyzer(lintCfg)

	diagsPerDoc, err := analyzer.AnalyzeAll(cmd.Context(), docs)
	if err != nil {
		return err
	}

	var results []lintFileResult
	for i, doc := range docs {
		if len(diagsPerDoc[i]) == 0 {
			continue
		}
		results = append(results, lintFileResult{
			Path:        doc.Path,
			Diagnostics: diagsPerDoc[i],
		})
	}

	// Filter by severity threshold
	results = filterBySeverity(results, opts.Severity)

	if renderCheckResults(r, results) {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// collectDumpFiles expands the given paths into dump file paths.
// Directories are walked recursively for YAML and JSON files.
func collectDumpFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(p)) {
			case ".yaml", ".yml", ".json":
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func buildLintConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg
}

// lintFileResult holds lint results for a single dump file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

func filterBySeverity(results []lintFileResult, severityThreshold string) []lintFileResult {
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		threshold = lint.SeverityHint
	}

	var filtered []lintFileResult
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lintFileResult{
				Path:        r.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

func renderCheckResults(r *output.Renderer, results []lintFileResult) bool {
	if len(results) == 0 {
		r.Success("No lint issues found")
		return false
	}

	// Calculate summary stats
	summary := output.LintSummary{
		FilesAnalyzed: len(results),
	}
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
		}
		for _, res := range results {
			fileResult := output.LintFileResult{
				Path: res.Path,
			}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:   d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
					Line:     d.Pos.Line,
					Column:   d.Pos.Column,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return true
	}

	// Text/Markdown output
	for _, res := range results {
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			if d.Pos.Line == 0 {
				loc = "-"
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-5s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.FilesAnalyzed)

	return true
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
