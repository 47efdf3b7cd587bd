package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinematch/internal/logtail"
)

// activityState holds the log overlay.
type activityState struct {
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
	loaded   bool
}

type activityLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

// loadActivityCmd reads the tail of the cinematch log off the UI goroutine.
func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityLoadedMsg{}
		}
		entries, err := logtail.Read(path, ActivityLogLines)
		return activityLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) initActivityViewport() {
	m.activity.viewport = viewport.New(maxInt(m.width-4, 10), maxInt(m.height-6, 3))
	m.activity.viewport.Style = lipgloss.NewStyle()
}

func (m *Model) resizeActivity() {
	m.activity.viewport.Width = maxInt(m.width-4, 10)
	m.activity.viewport.Height = maxInt(m.height-6, 3)
	m.syncActivity()
}

func (m *Model) handleActivityLoaded(msg activityLoadedMsg) {
	m.activity.entries = msg.entries
	m.activity.err = msg.err
	m.activity.loaded = true
	m.syncActivity()
	m.activity.viewport.GotoBottom()
}

// syncActivity renders the loaded entries into the overlay viewport.
func (m *Model) syncActivity() {
	if m.activity.viewport.Width == 0 {
		return
	}
	m.activity.viewport.SetContent(m.renderActivityContent(m.activity.viewport.Width))
}

func (m Model) renderActivityContent(width int) string {
	styles := m.theme.Styles()
	switch {
	case !m.activity.loaded:
		return styles.MutedText.Render("Reading log...")
	case m.activity.err != nil:
		return styles.DangerText.Render(fmt.Sprintf("Could not read log: %v", m.activity.err))
	case m.logPath == "":
		return styles.MutedText.Render("Logging is disabled.")
	case len(m.activity.entries) == 0:
		return styles.MutedText.Render("No activity yet.")
	}

	lines := make([]string, 0, len(m.activity.entries))
	for _, e := range m.activity.entries {
		lines = append(lines, m.formatEntry(e, styles))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// formatEntry renders one log entry as "15:04:05 LVL message key=value".
func (m Model) formatEntry(e logtail.Entry, styles Styles) string {
	if !e.Structured() {
		return styles.Text.Render(e.Message)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
	}
	b.WriteString(levelStyle(e.Level, styles).Render(levelLabel(e.Level)))
	b.WriteString(" ")
	b.WriteString(styles.Text.Render(e.Message))
	for _, k := range e.FieldKeys() {
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(k + "="))
		b.WriteString(styles.InfoText.Render(e.Fields[k]))
	}
	return b.String()
}

func levelLabel(level string) string {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return "DBG"
	case "info":
		return "INF"
	case "warn", "warning":
		return "WRN"
	case "error", "fatal", "panic":
		return "ERR"
	default:
		return padRight(strings.ToUpper(truncate(level, 3)), 3)
	}
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "warn", "warning":
		return styles.WarningText.Bold(true)
	case "error", "fatal", "panic":
		return styles.DangerText
	case "info":
		return styles.SuccessText
	default:
		return styles.InfoText
	}
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Activity), key.Matches(msg, m.keys.Quit):
		m.showActivity = false
		return m, nil
	case msg.String() == "r":
		m.activity.loaded = false
		m.syncActivity()
		return m, loadActivityCmd(m.logPath)
	case key.Matches(msg, m.keys.Up):
		m.activity.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.activity.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.activity.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.activity.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.activity.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.activity.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.activity.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.activity.viewport.HalfPageDown()
	}
	return m, nil
}

// renderActivity renders the log overlay.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("Activity")
	path := styles.FaintText.Render(truncateMiddle(m.logPath, maxInt(m.width-20, 10)))
	hint := styles.MutedText.Render("r refresh · j/k scroll · esc close")

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Width(maxInt(m.width-2, 10)).
		Render(m.activity.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+path, body, hint)
}
