package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cinematch/internal/logging"
	"github.com/five82/cinematch/internal/recommend"
)

type moviesLoadedMsg struct {
	titles []string
	err    error
}

type recommendationsMsg struct {
	req  recommend.Request
	resp *recommend.Response
	err  error
}

type pulseDoneMsg struct{ seq int }

// loadMoviesCmd fetches the movie list. It runs once per session; a failure
// is final.
func loadMoviesCmd(ctx context.Context, api recommend.API) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = moviesLoadedMsg{err: panicError(recommend.OpMovies, r)}
			}
		}()
		if api == nil {
			return moviesLoadedMsg{err: &recommend.BackendError{Op: recommend.OpMovies, Err: errors.New("no backend client")}}
		}
		titles, err := api.FetchMovies(ctx)
		return moviesLoadedMsg{titles: titles, err: err}
	}
}

// recommendCmd performs the single POST for req. A panic in the client is
// reported as a failed request so the trigger is always re-enabled.
func recommendCmd(ctx context.Context, api recommend.API, req recommend.Request) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = recommendationsMsg{req: req, err: panicError(recommend.OpRecommend, r)}
			}
		}()
		resp, err := api.Recommend(ctx, req)
		return recommendationsMsg{req: req, resp: resp, err: err}
	}
}

func panicError(op string, r any) error {
	return &recommend.BackendError{Op: op, Err: fmt.Errorf("panic: %v", r)}
}

func (m Model) handleMoviesLoaded(msg moviesLoadedMsg) (Model, tea.Cmd) {
	m.loaded = true

	if msg.err != nil {
		logging.Error().Err(msg.err).Msg("load movie list")
		m.catalogue = recommend.NewCatalogue(nil)
		m.selector.setOptions([]option{{label: errorLoadingLabel, disabled: true}})
		cmd := m.showToast(toastMoviesFailed, toastError)
		return m, cmd
	}

	m.catalogue = recommend.NewCatalogue(msg.titles)
	titles := m.catalogue.Titles()
	opts := make([]option, 0, len(titles)+1)
	opts = append(opts, option{label: placeholderLabel})
	for _, title := range titles {
		opts = append(opts, option{label: title, value: title})
	}
	m.selector.setOptions(opts)

	logging.Info().Int("movies", len(titles)).Msg("movie list loaded")
	cmd := m.showToast(toastMoviesLoaded, toastSuccess)
	return m, cmd
}

// requestRecommendations validates the form and, when valid, disables the
// trigger and issues exactly one request. Triggers while disabled are
// ignored.
func (m Model) requestRecommendations() (Model, tea.Cmd) {
	if m.trigger.disabled {
		logging.Debug().Msg("recommendation request already in flight")
		return m, nil
	}

	req, err := recommend.NewRequest(m.selector.Value(), m.count.Value(), m.catalogue)
	if err != nil {
		text := err.Error()
		var verr *recommend.ValidationError
		if errors.As(err, &verr) {
			text = verr.Message
		}
		logging.Debug().Str("reason", text).Msg("recommendation input rejected")
		cmd := m.showToast(text, toastError)
		return m, cmd
	}

	m.trigger.disabled = true
	m.results = loadingResults()
	m.syncResults()

	logging.Info().Str("movie", req.Movie).Int("num", req.Num).Msg("requesting recommendations")
	return m, tea.Batch(recommendCmd(m.ctx, m.api, req), m.spinner.Tick)
}

func (m Model) handleRecommendations(msg recommendationsMsg) (Model, tea.Cmd) {
	m.trigger.disabled = false

	err := msg.err
	if err == nil && msg.resp == nil {
		err = &recommend.BackendError{Op: recommend.OpRecommend, Err: errors.New("empty response")}
	}
	if err != nil {
		logging.Error().Err(err).Str("movie", msg.req.Movie).Msg("fetch recommendations")
		m.results = errorResults()
		m.syncResults()
		cmd := m.showToast(toastRecommendFailed, toastError)
		return m, cmd
	}

	m.results = renderRecommendations(msg.resp.SelectedMovie, msg.resp.Recommendations)
	m.syncResults()
	m.viewport.GotoTop()

	logging.Info().
		Str("movie", msg.resp.SelectedMovie).
		Int("results", len(msg.resp.Recommendations)).
		Msg("recommendations rendered")
	cmd := m.showToast(toastRecommended, toastSuccess)
	return m, cmd
}

// selectionChanged briefly highlights the trigger when a movie is picked.
func (m *Model) selectionChanged() tea.Cmd {
	if m.selector.Value() == "" {
		return nil
	}
	m.trigger.pulseSeq++
	m.trigger.pulse = true
	seq := m.trigger.pulseSeq
	return tea.Tick(PulseDuration, func(time.Time) tea.Msg {
		return pulseDoneMsg{seq: seq}
	})
}
