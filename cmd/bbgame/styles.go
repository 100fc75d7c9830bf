package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/busybeaver/analyze"
)

var (
	colorBlue    = lipgloss.Color("4")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorMagenta = lipgloss.Color("5")
	colorRed     = lipgloss.Color("1")
	colorFaint   = lipgloss.Color("8")
)

// styles are bound to one output so color is only emitted to terminals.
type styles struct {
	title   lipgloss.Style
	blue    lipgloss.Style
	bold    lipgloss.Style
	muted   lipgloss.Style
	green   lipgloss.Style
	yellow  lipgloss.Style
	magenta lipgloss.Style
	red     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	bold := r.NewStyle().Bold(true)

	return styles{
		title:   bold.Foreground(colorBlue),
		blue:    r.NewStyle().Foreground(colorBlue),
		bold:    bold,
		muted:   r.NewStyle().Foreground(colorFaint),
		green:   bold.Foreground(colorGreen),
		yellow:  bold.Foreground(colorYellow),
		magenta: bold.Foreground(colorMagenta),
		red:     bold.Foreground(colorRed),
	}
}

// outcome picks the report color of an outcome kind.
func (s styles) outcome(o analyze.Outcome) lipgloss.Style {
	switch o.Kind {
	case analyze.Halted, analyze.ImmediateHalt:
		return s.green
	case analyze.AbortedAfterMaxSteps:
		return s.red
	default:
		return s.magenta
	}
}
