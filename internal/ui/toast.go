package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// Notification texts.
const (
	toastMoviesLoaded    = "Movies loaded successfully!"
	toastMoviesFailed    = "Failed to load movies. Check backend connection."
	toastRecommended     = "Recommendations generated!"
	toastRecommendFailed = "Failed to fetch recommendations."
)

// toast is the single transient notification slot. A new notification
// replaces the current one; seq makes sure an older expiry never hides it.
type toast struct {
	message string
	kind    toastKind
	visible bool
	seq     int
}

type toastExpiredMsg struct{ seq int }

// showToast displays message for ToastDuration.
func (m *Model) showToast(message string, kind toastKind) tea.Cmd {
	m.toast.seq++
	m.toast.message = message
	m.toast.kind = kind
	m.toast.visible = true

	seq := m.toast.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toast) expire(seq int) {
	if seq == t.seq {
		t.visible = false
	}
}

func (m Model) renderToast() string {
	if !m.toast.visible || m.toast.message == "" {
		return ""
	}

	var color, glyph string
	switch m.toast.kind {
	case toastSuccess:
		color, glyph = m.theme.Success, "✓"
	case toastError:
		color, glyph = m.theme.Danger, "✗"
	default:
		color, glyph = m.theme.Info, "•"
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
	return style.Render(glyph + " " + truncate(m.toast.message, maxInt(m.width-6, 10)))
}
