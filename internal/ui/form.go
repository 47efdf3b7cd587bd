package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const triggerLabel = "Get Recommendations"

// renderForm draws the selection control, count input and trigger.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	width := maxInt(m.width, 40)
	fieldWidth := minInt(width-12, 60)

	box := func(focused bool) lipgloss.Style {
		if focused {
			return styles.FocusedBorder.Padding(0, 1)
		}
		return styles.BlurredBorder.Padding(0, 1)
	}
	label := func(text string, focused bool) string {
		style := styles.MutedText
		if focused {
			style = styles.AccentText.Bold(true)
		}
		return style.Width(8).Render(text)
	}

	movieFocused := m.focus == focusSelect
	movie := box(movieFocused).Width(fieldWidth).Render(m.selector.render(m, movieFocused, fieldWidth))

	countFocused := m.focus == focusCount
	countHint := styles.FaintText.Render("1-20")
	countBox := box(countFocused).Width(10).Render(m.count.View())

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, label("Movie", movieFocused), movie),
		lipgloss.JoinHorizontal(lipgloss.Center, label("Count", countFocused), countBox, " ", countHint),
		lipgloss.JoinHorizontal(lipgloss.Center, strings.Repeat(" ", 8), m.renderTrigger()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTrigger draws the button: faint while a request is in flight,
// highlighted during the selection pulse.
func (m Model) renderTrigger() string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(m.theme.Text)).
		Background(lipgloss.Color(m.theme.SurfaceAlt))

	switch {
	case m.trigger.disabled:
		style = style.
			Bold(false).
			Foreground(lipgloss.Color(m.theme.Faint)).
			Background(lipgloss.Color(m.theme.Surface))
	case m.trigger.pulse:
		style = style.
			Foreground(lipgloss.Color(m.theme.Background)).
			Background(lipgloss.Color(m.theme.Accent))
	case m.focus == focusTrigger:
		style = style.
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Background(lipgloss.Color(m.theme.SelectionBg))
	}

	label := triggerLabel
	if m.trigger.disabled {
		label = m.spinner.View() + " " + triggerLabel
	}
	return style.Render(label)
}
