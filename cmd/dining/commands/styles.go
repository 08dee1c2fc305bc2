package commands

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#B294FF"}
	muted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	warn   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
)

// styles are bound to the output writer, so piped or captured output
// carries no escape codes.
type styles struct {
	Hall     lipgloss.Style
	Subtitle lipgloss.Style
	Notice   lipgloss.Style
	Meal     lipgloss.Style
	Badge    lipgloss.Style
	Day      lipgloss.Style
	Station  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Hall:     r.NewStyle().Foreground(accent).Bold(true),
		Subtitle: r.NewStyle().Foreground(muted).Italic(true),
		Notice:   r.NewStyle().Foreground(warn),
		Meal:     r.NewStyle().Bold(true),
		Badge:    r.NewStyle().Foreground(muted),
		Day:      r.NewStyle().Underline(true),
		Station:  r.NewStyle().Foreground(accent),
	}
}
