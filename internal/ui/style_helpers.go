package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// surfacePainter renders status bar segments on a solid background. Every
// character, including the spaces between words, carries the background so
// ANSI resets between segments do not leave holes in the bar.
type surfacePainter struct {
	bg    lipgloss.Color
	blank lipgloss.Style
}

func newSurfacePainter(color string) surfacePainter {
	bg := lipgloss.Color(color)
	return surfacePainter{bg: bg, blank: lipgloss.NewStyle().Background(bg)}
}

// text renders s with style on the surface background. Runs of spaces are
// kept.
func (p surfacePainter) text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	styled := style.Background(p.bg)
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, p.gap(1))
}

// gap returns n background-colored spaces.
func (p surfacePainter) gap(n int) string {
	return p.blank.Render(strings.Repeat(" ", n))
}

// join concatenates parts with a background-colored separator.
func (p surfacePainter) join(parts []string, sep string) string {
	return strings.Join(parts, p.blank.Render(sep))
}

// fill pads content to width.
func (p surfacePainter) fill(content string, width int) string {
	return p.blank.Width(width).Render(content)
}
