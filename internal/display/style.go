package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the styles used for terminal output. Colours are the basic
// 16-colour ANSI set so the active theme decides the final shades.
type Palette struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Warn    lipgloss.Style
	Accent  lipgloss.Style
	Command lipgloss.Style
	Muted   lipgloss.Style
	Rain    []lipgloss.Style
}

// NewPalette builds styles on a renderer pinned to the ANSI profile, since the
// output goes to a remote terminal rather than the process's own TTY.
func NewPalette() Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	bold := func(c string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}
	return Palette{
		Error:   bold("1"),
		Success: bold("2"),
		Info:    bold("6"),
		Warn:    bold("3"),
		Accent:  bold("5"),
		Command: bold("4"),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Rain: []lipgloss.Style{
			r.NewStyle().Foreground(lipgloss.Color("2")),
			r.NewStyle().Foreground(lipgloss.Color("10")),
		},
	}
}
