package output

// LintSummary aggregates issue counts across analyzed files.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintDiagnostic is the JSON shape of one finding.
type LintDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// LintFileResult groups findings for one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintOutput is the JSON output structure for the check command.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}
