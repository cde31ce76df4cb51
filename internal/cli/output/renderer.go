// Package output renders CLI results in terminal, markdown, and JSON modes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Rendering modes.
const (
	// ModeAuto picks text on a terminal and markdown otherwise.
	ModeAuto Mode = "auto"
	// ModeText is styled terminal output.
	ModeText Mode = "text"
	// ModeMarkdown is plain markdown for piped/scripted use.
	ModeMarkdown Mode = "markdown"
	// ModeJSON is machine-readable output.
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(),
	}
}

// EffectiveMode resolves ModeAuto against the output destination.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the style set used in text mode.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the destination for primary output.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the destination for secondary/error output.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the primary output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output to the primary output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Success writes a success line, styled in text mode.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeText {
		r.Println(r.styles.Success.Render("✓ " + msg))
		return
	}
	r.Println(msg)
}

// JSON writes v as indented JSON to the primary output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
