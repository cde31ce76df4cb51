// Package config provides configuration management for the uselint CLI.
//
// Configuration is merged from defaults, a uselint.yaml file, USELINT_
// environment variables, and CLI flags, in increasing precedence.
package config

// Defaults for top-level settings.
const (
	DefaultOutput   = "auto"
	DefaultSeverity = "hint"
)

// RuleOptions holds rule-specific option values keyed by option name.
type RuleOptions map[string]any

// LintConfig configures rule selection and severities.
type LintConfig struct {
	// Disabled contains rule IDs to skip
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity override names
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID
	Rules map[string]RuleOptions `koanf:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Severity     string      `koanf:"severity"`
	Lint         *LintConfig `koanf:"lint"`
}
