package commands

import (
	"github.com/leapstack-labs/uselint/internal/cli/config"
	"github.com/leapstack-labs/uselint/internal/cli/output"
	"github.com/spf13/cobra"
)

// newRenderer builds a renderer for a command, honoring a per-command
// --format override over the configured output mode.
func newRenderer(cmd *cobra.Command, cfg *config.Config, formatOverride string) *output.Renderer {
	mode := output.ModeAuto
	if cfg != nil && cfg.OutputFormat != "" {
		mode = output.Mode(cfg.OutputFormat)
	}
	if formatOverride != "" {
		mode = output.Mode(formatOverride)
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
}
