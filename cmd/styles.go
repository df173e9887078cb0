package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// primaryColor is the main theme color.
	primaryColor = lipgloss.Color("#4ECDC4")
	// errorColor indicates errors or failure messages.
	errorColor = lipgloss.Color("#FF6B6B")
	// subtleColor indicates less prominent UI elements.
	subtleColor = lipgloss.Color("#666666")
)

// styles holds the styles of a session, bound to its output.
//
// Colors are only emitted when the output is a terminal.
type styles struct {
	title   lipgloss.Style
	menu    lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		menu:    r.NewStyle().Foreground(subtleColor),
		failure: r.NewStyle().Foreground(errorColor),
	}
}
