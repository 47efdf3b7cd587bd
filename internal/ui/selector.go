package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Selection control labels.
const (
	loadingMoviesLabel = "Loading movies..."
	placeholderLabel   = "Choose a movie..."
	errorLoadingLabel  = "Error loading movies"
)

// option is one entry of the movie selection control. The placeholder has an
// empty value.
type option struct {
	label    string
	value    string
	disabled bool
}

// selector is the movie selection control. Moving the cursor changes the
// selection, like a keyboard-driven select element. The filter only narrows
// which entries are visible; options itself is never modified by filtering.
type selector struct {
	options   []option
	selected  int
	visible   []int
	filter    textinput.Model
	filtering bool
}

func newSelector() selector {
	ti := textinput.New()
	ti.Placeholder = "Filter movies..."
	ti.Prompt = "/"
	ti.CharLimit = 100
	ti.Width = 30

	s := selector{filter: ti}
	s.setOptions([]option{{label: loadingMoviesLabel, disabled: true}})
	return s
}

// setOptions replaces every entry and resets the selection to the first one.
func (s *selector) setOptions(opts []option) {
	s.options = opts
	s.selected = 0
	s.filter.SetValue("")
	s.filter.Blur()
	s.filtering = false
	s.applyFilter()
}

// Value returns the selected movie, or "" for the placeholder and disabled
// entries.
func (s selector) Value() string {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ""
	}
	opt := s.options[s.selected]
	if opt.disabled {
		return ""
	}
	return opt.value
}

// Label returns the text of the selected entry.
func (s selector) Label() string {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ""
	}
	return s.options[s.selected].label
}

// Labels returns every entry's label in order, ignoring the filter.
func (s selector) Labels() []string {
	out := make([]string, len(s.options))
	for i, opt := range s.options {
		out[i] = opt.label
	}
	return out
}

func (s selector) query() string {
	return strings.ToLower(strings.TrimSpace(s.filter.Value()))
}

// applyFilter recomputes the visible entries. When the selection falls out of
// view it moves to the first visible entry. It reports whether the selection
// changed.
func (s *selector) applyFilter() bool {
	q := s.query()
	s.visible = make([]int, 0, len(s.options))
	for i, opt := range s.options {
		if q != "" && (opt.value == "" || !strings.Contains(strings.ToLower(opt.label), q)) {
			continue
		}
		s.visible = append(s.visible, i)
	}
	if len(s.visible) == 0 || s.position() >= 0 {
		return false
	}
	for _, idx := range s.visible {
		if !s.options[idx].disabled {
			return s.selectIndex(idx)
		}
	}
	return false
}

// position returns the selection's index within visible, or -1.
func (s selector) position() int {
	for pos, idx := range s.visible {
		if idx == s.selected {
			return pos
		}
	}
	return -1
}

func (s *selector) selectIndex(idx int) bool {
	if idx == s.selected {
		return false
	}
	s.selected = idx
	return true
}

// move shifts the selection by delta visible entries, skipping disabled ones.
func (s *selector) move(delta int) bool {
	if len(s.visible) == 0 || delta == 0 {
		return false
	}
	pos := s.position()
	if pos < 0 {
		pos = 0
		if delta > 0 {
			delta--
		}
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	target := pos
	for moved := 0; moved != delta; {
		next := target + step
		if next < 0 || next >= len(s.visible) {
			break
		}
		target = next
		if !s.options[s.visible[target]].disabled {
			moved += step
		}
	}
	if s.options[s.visible[target]].disabled {
		return false
	}
	return s.selectIndex(s.visible[target])
}

// jump selects the first or last enabled visible entry.
func (s *selector) jump(first bool) bool {
	if len(s.visible) == 0 {
		return false
	}
	if first {
		for _, idx := range s.visible {
			if !s.options[idx].disabled {
				return s.selectIndex(idx)
			}
		}
		return false
	}
	for i := len(s.visible) - 1; i >= 0; i-- {
		if idx := s.visible[i]; !s.options[idx].disabled {
			return s.selectIndex(idx)
		}
	}
	return false
}

func (s *selector) startFilter() tea.Cmd {
	s.filtering = true
	return s.filter.Focus()
}

func (s *selector) stopFilter() {
	s.filtering = false
	s.filter.Blur()
}

// clearFilter drops the filter text and shows every entry again.
func (s *selector) clearFilter() {
	s.stopFilter()
	s.filter.SetValue("")
	s.applyFilter()
}

// updateFilter feeds a key to the filter input and reports whether the
// selection changed as a result.
func (s *selector) updateFilter(msg tea.Msg) (bool, tea.Cmd) {
	before := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.filter.Value() == before {
		return false, cmd
	}
	return s.applyFilter(), cmd
}

// render draws the control. Unfocused it is a single line; focused it opens
// a window of SelectorRows entries around the selection.
func (s selector) render(m Model, focused bool, width int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 10)

	if !focused {
		label := truncate(s.Label(), inner-2)
		style := styles.Text
		if s.Value() == "" {
			style = styles.MutedText
		}
		return style.Render(padRight(label, inner-2)) + styles.FaintText.Render(" ▾")
	}

	var b strings.Builder
	if s.filtering || s.filter.Value() != "" {
		b.WriteString(s.filter.View())
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d/%d", s.matchCount(), s.movieCount())))
		b.WriteString("\n")
	}

	if len(s.visible) == 0 {
		b.WriteString(styles.MutedText.Render("No matching movies"))
		return b.String()
	}

	start, end := s.window()
	for i := start; i < end; i++ {
		idx := s.visible[i]
		opt := s.options[idx]
		line := truncate(opt.label, inner-2)
		switch {
		case idx == s.selected:
			b.WriteString(styles.Selected.Render("› " + padRight(line, inner-2)))
		case opt.disabled:
			b.WriteString(styles.FaintText.Render("  " + line))
		case opt.value == "":
			b.WriteString(styles.MutedText.Render("  " + line))
		default:
			b.WriteString(styles.Text.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// window returns the visible range to draw, keeping the selection in view.
func (s selector) window() (int, int) {
	n := len(s.visible)
	if n <= SelectorRows {
		return 0, n
	}
	pos := maxInt(s.position(), 0)
	start := pos - SelectorRows/2
	if start < 0 {
		start = 0
	}
	if start+SelectorRows > n {
		start = n - SelectorRows
	}
	return start, start + SelectorRows
}

func (s selector) matchCount() int {
	count := 0
	for _, idx := range s.visible {
		if s.options[idx].value != "" {
			count++
		}
	}
	return count
}

func (s selector) movieCount() int {
	count := 0
	for _, opt := range s.options {
		if opt.value != "" {
			count++
		}
	}
	return count
}
