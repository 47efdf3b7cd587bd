package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar: logo, backend, health and catalogue
// size.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurfacePainter(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	parts := []string{bg.text("cinematch", styles.Logo)}

	if health := m.formatHealth(styles, bg); health != "" {
		parts = append(parts, health)
	}

	urlLimit := 48
	if compact {
		urlLimit = 24
	}
	if m.baseURL != "" {
		parts = append(parts,
			bg.text("API", styles.MutedText)+bg.gap(1)+
				bg.text(truncateMiddle(m.baseURL, urlLimit), styles.Text))
	}

	switch {
	case !m.loaded:
		parts = append(parts, bg.text("Loading movies...", styles.WarningText))
	case m.catalogue.Len() > 0:
		parts = append(parts,
			bg.text("Movies:", styles.MutedText)+bg.gap(1)+
				bg.text(fmt.Sprintf("%d", m.catalogue.Len()), styles.Text))
	default:
		parts = append(parts, bg.text("No movies", styles.DangerText))
	}

	if m.trigger.disabled {
		parts = append(parts, bg.text("Working", styles.InfoText))
	}

	return bg.fill(bg.join(parts, "  "), m.width)
}

// formatHealth renders the backend indicator from the poller snapshot.
func (m Model) formatHealth(styles Styles, bg surfacePainter) string {
	if m.store == nil {
		return ""
	}
	snap := m.health
	switch {
	case !snap.HasCheck:
		return bg.text("● CHECKING", styles.MutedText)
	case snap.Reachable():
		latency := ""
		if snap.Latency > 0 {
			latency = bg.gap(1) + bg.text(formatLatency(snap.Latency), styles.FaintText)
		}
		return bg.text("● ONLINE", styles.SuccessText) + latency
	case snap.IsOffline():
		return bg.text("● "+classifyConnectionError(snap.LastError), styles.DangerText)
	default:
		return bg.text("● RETRYING", styles.WarningText.Bold(true))
	}
}

func formatLatency(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	return d.Round(time.Millisecond).String()
}

// classifyConnectionError maps a health check error to a short label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "backend returned status"):
		return "UNHEALTHY"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints for the focused control.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurfacePainter(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.selector.filtering:
		commands = []cmd{
			{"type", "Filter"},
			{"↑/↓", "Choose"},
			{"enter", "Done"},
			{"esc", "Clear"},
		}
	case m.focus == focusCount:
		commands = []cmd{
			{"0-9", "Count"},
			{"enter", "Recommend"},
			{"tab", "Next"},
			{"esc", "Back"},
		}
	case m.focus == focusTrigger:
		commands = []cmd{
			{"enter", "Recommend"},
			{"tab", "Next"},
			{"pgup/pgdn", "Scroll"},
			{"?", "More"},
		}
	default: // focusSelect
		commands = []cmd{
			{"j/k", "Choose"},
			{"/", "Filter"},
			{"enter", "Count"},
			{"ctrl+r", "Recommend"},
			{"L", "Activity"},
			{"?", "More"},
		}
	}

	colon := bg.text(":", styles.FaintText)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.text(c.key, styles.AccentText)+colon+bg.text(c.desc, styles.MutedText))
	}

	// Show active filter pattern
	if q := m.selector.filter.Value(); q != "" && !m.selector.filtering {
		segments = append(segments, bg.text("/"+truncate(q, 18), styles.AccentText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.text("T", styles.AccentText)+colon+bg.text(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.join(segments, "  "))
}
