package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinematch/internal/recommend"
)

type resultsMode int

const (
	resultsHidden resultsMode = iota
	resultsLoading
	resultsCards
	resultsEmpty
	resultsError
)

// Results area texts.
const (
	loadingText = "Finding perfect matches"
	emptyText   = "No recommendations found. Try another movie!"
	errorText   = "Failed to get recommendations. Please try again."
)

// card is one rendered recommendation.
type card struct {
	title  string
	badges []string
}

// results is the state of the results area: a heading, a count label and a
// body that is exactly one of loading, cards, empty-state or error.
type results struct {
	mode       resultsMode
	heading    string
	countLabel string
	cards      []card
	message    string
}

func loadingResults() results {
	return results{mode: resultsLoading, message: loadingText}
}

func errorResults() results {
	return results{mode: resultsError, message: errorText}
}

// renderRecommendations turns a backend response into the results area. An
// empty or absent list yields the empty-state block; cards keep server order.
func renderRecommendations(movieName string, recs []recommend.Result) results {
	r := results{
		heading:    fmt.Sprintf("Similar to \"%s\"", movieName),
		countLabel: fmt.Sprintf("%d Results", len(recs)),
	}
	if len(recs) == 0 {
		r.mode = resultsEmpty
		r.message = emptyText
		return r
	}
	r.mode = resultsCards
	r.cards = make([]card, 0, len(recs))
	for _, rec := range recs {
		r.cards = append(r.cards, card{
			title:  rec.DisplayTitle(),
			badges: rec.GenreBadges(),
		})
	}
	return r
}

// syncResults pushes the current results into the scrollable viewport.
func (m *Model) syncResults() {
	if m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(m.renderResultsContent(m.viewport.Width))
}

func (m Model) renderResultsContent(width int) string {
	styles := m.theme.Styles()
	switch m.results.mode {
	case resultsCards:
		return m.renderCards(width)
	case resultsEmpty:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(styles.MutedText.Render(m.results.message))
	case resultsError:
		return lipgloss.NewStyle().
			Width(width).
			Padding(1, 2).
			Render(styles.DangerText.Render(m.results.message))
	default:
		return ""
	}
}

// renderCards lays cards out in as many columns as fit the width.
func (m Model) renderCards(width int) string {
	styles := m.theme.Styles()
	inner := CardWidth - 4

	rendered := make([]string, 0, len(m.results.cards))
	for _, c := range m.results.cards {
		lines := []string{styles.Text.Bold(true).Render(truncate(c.title, inner))}

		badges := make([]string, 0, len(c.badges))
		for _, g := range c.badges {
			badges = append(badges, styles.BadgeStyle(g).Render(truncate(g, inner-2)))
		}
		for _, row := range wrapWords(badges, inner, 1) {
			lines = append(lines, strings.Join(row, " "))
		}
		rendered = append(rendered, styles.Card.Width(CardWidth-2).Render(strings.Join(lines, "\n")))
	}

	cols := maxInt(1, (width+CardGap)/(CardWidth+CardGap))
	gap := strings.Repeat(" ", CardGap)
	rows := make([]string, 0, len(rendered)/cols+1)
	for i := 0; i < len(rendered); i += cols {
		end := i + cols
		if end > len(rendered) {
			end = len(rendered)
		}
		parts := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				parts = append(parts, gap)
			}
			parts = append(parts, rendered[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderResultsHeading draws the heading and count label on one line.
func (m Model) renderResultsHeading() string {
	if m.results.heading == "" && m.results.countLabel == "" {
		return ""
	}
	styles := m.theme.Styles()
	heading := styles.AccentText.Bold(true).Render(truncate(m.results.heading, maxInt(m.width-16, 10)))
	count := styles.MutedText.Render(m.results.countLabel)
	gap := maxInt(1, m.width-lipgloss.Width(heading)-lipgloss.Width(count))
	return heading + strings.Repeat(" ", gap) + count
}

// renderResultsBody draws the loading indicator or the viewport.
func (m Model) renderResultsBody() string {
	styles := m.theme.Styles()
	switch m.results.mode {
	case resultsHidden:
		return styles.FaintText.Render("Pick a movie and press ctrl+r for recommendations.")
	case resultsLoading:
		return m.spinner.View() + " " + styles.InfoText.Render(m.results.message)
	default:
		return m.viewport.View()
	}
}
