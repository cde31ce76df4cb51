package output

import "github.com/charmbracelet/lipgloss"

// Styles is the style set used for text-mode rendering.
// Lipgloss degrades the styling itself when the destination is not a
// color-capable terminal.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

func newStyles() *Styles {
	return &Styles{
		Header1:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FilePath: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}
