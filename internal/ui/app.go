package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinematch/internal/logging"
	"github.com/five82/cinematch/internal/prefs"
	"github.com/five82/cinematch/internal/recommend"
	"github.com/five82/cinematch/internal/state"
)

// focusArea is the form control that receives keys.
type focusArea int

const (
	focusSelect focusArea = iota
	focusCount
	focusTrigger
	focusAreaCount
)

func (f focusArea) next() focusArea { return (f + 1) % focusAreaCount }
func (f focusArea) prev() focusArea { return (f + focusAreaCount - 1) % focusAreaCount }

// trigger is the "Get Recommendations" control. disabled doubles as the
// reentrancy guard: it is set before a request command is issued and cleared
// when its result arrives.
type trigger struct {
	disabled bool
	pulse    bool
	pulseSeq int
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       recommend.API
	BaseURL   string
	Store     *state.Store // nil hides the health indicator
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       recommend.API
	baseURL   string
	store     *state.Store
	prefsPath string
	logPath   string
	pollTick  time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool
	focus  focusArea

	// Form
	selector  selector
	count     textinput.Model
	trigger   trigger
	catalogue recommend.Catalogue
	loaded    bool

	// Results
	results  results
	viewport viewport.Model
	spinner  spinner.Model

	toast  toast
	health state.Snapshot

	// Overlays
	showHelp     bool
	showActivity bool
	activity     activityState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	count := textinput.New()
	count.Prompt = ""
	count.CharLimit = 6
	count.Width = 6
	count.SetValue("8")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		api:       opts.API,
		baseURL:   opts.BaseURL,
		store:     opts.Store,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		pollTick:  pollTick,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		focus:     focusSelect,
		selector:  newSelector(),
		count:     count,
		spinner:   sp,
	}
}

// Init implements tea.Model. The movie list is requested exactly once here.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadMoviesCmd(m.ctx, m.api)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.relayout()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, maxInt(msg.Height-12, 3))
			m.viewport.Style = lipgloss.NewStyle()
			m.initActivityViewport()
		}
		m.ready = true
		m.relayout()
		m.syncResults()
		m.resizeActivity()
		return m, nil

	case moviesLoadedMsg:
		return m.handleMoviesLoaded(msg)

	case recommendationsMsg:
		return m.handleRecommendations(msg)

	case toastExpiredMsg:
		m.toast.expire(msg.seq)
		return m, nil

	case pulseDoneMsg:
		if msg.seq == m.trigger.pulseSeq {
			m.trigger.pulse = false
		}
		return m, nil

	case spinner.TickMsg:
		// Let the tick loop die once nothing is loading.
		if m.results.mode != resultsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.store == nil {
			return m, nil
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		m.health = state.Snapshot(msg)
		return m, nil

	case activityLoadedMsg:
		m.handleActivityLoaded(msg)
		return m, nil
	}

	// Cursor blink and other component messages go to the focused input.
	return m.updateInputs(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showActivity {
		return m.renderActivity()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Text inputs get printable keys before
// the single-letter globals do.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showActivity {
		return m.handleActivityKey(msg)
	}

	if m.selector.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Recommend):
		return m.requestRecommendations()
	case key.Matches(msg, m.keys.Tab):
		return m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.ShiftTab):
		return m.setFocus(m.focus.prev())
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil
	}

	if m.focus == focusCount {
		return m.handleCountKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		return m, loadActivityCmd(m.logPath)
	}

	switch m.focus {
	case focusSelect:
		return m.handleSelectKey(msg)
	case focusTrigger:
		if key.Matches(msg, m.keys.Confirm) || msg.String() == " " {
			return m.requestRecommendations()
		}
	}
	return m, nil
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var changed bool
	switch {
	case key.Matches(msg, m.keys.Up):
		changed = m.selector.move(-1)
	case key.Matches(msg, m.keys.Down):
		changed = m.selector.move(1)
	case key.Matches(msg, m.keys.Top):
		changed = m.selector.jump(true)
	case key.Matches(msg, m.keys.Bottom):
		changed = m.selector.jump(false)
	case key.Matches(msg, m.keys.Filter):
		cmd := m.selector.startFilter()
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		m.selector.clearFilter()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.setFocus(focusCount)
	}
	if changed {
		cmd := m.selectionChanged()
		return m, cmd
	}
	return m, nil
}

// handleFilterKey routes keys while the filter input is being edited. Only
// arrow keys navigate so letters reach the filter.
func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var changed bool
	switch msg.String() {
	case "esc":
		m.selector.clearFilter()
		return m, nil
	case "enter":
		m.selector.stopFilter()
		return m, nil
	case "up":
		changed = m.selector.move(-1)
	case "down":
		changed = m.selector.move(1)
	default:
		var cmd tea.Cmd
		changed, cmd = m.selector.updateFilter(msg)
		if changed {
			pulse := m.selectionChanged()
			return m, tea.Batch(cmd, pulse)
		}
		return m, cmd
	}
	if changed {
		cmd := m.selectionChanged()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleCountKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.requestRecommendations()
	case key.Matches(msg, m.keys.Escape):
		return m.setFocus(focusSelect)
	}
	var cmd tea.Cmd
	m.count, cmd = m.count.Update(msg)
	return m, cmd
}

// updateInputs forwards non-key messages such as cursor blinks.
func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focus == focusCount {
		m.count, cmd = m.count.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.selector.filtering {
		m.selector.filter, cmd = m.selector.filter.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	m.focus = f
	if f == focusCount {
		cmd := m.count.Focus()
		return m, cmd
	}
	m.count.Blur()
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			logging.Warn().Err(err).Str("theme", m.theme.Name).Msg("save prefs")
		}
	}
	m.syncResults()
	m.syncActivity()
}

// relayout sizes the results viewport to the space left under the form.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	used := lipgloss.Height(m.renderTop()) + 2 // results heading + toast line
	h := maxInt(m.height-used-1, 3)
	if m.viewport.Width != m.width {
		m.viewport.Width = m.width
		m.syncResults()
	}
	m.viewport.Height = h
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderTop())
	b.WriteString("\n")

	b.WriteString(m.renderResultsHeading())
	b.WriteString("\n")
	b.WriteString(m.renderResultsBody())
	b.WriteString("\n")

	b.WriteString(m.renderToast())

	return b.String()
}

// renderTop renders the header, command bar and form.
func (m Model) renderTop() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderForm())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
