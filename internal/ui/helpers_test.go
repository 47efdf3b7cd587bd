package ui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cinematch/internal/recommend"
)

// fakeAPI records every call. When gate is set Recommend blocks until it is
// closed.
type fakeAPI struct {
	mu        sync.Mutex
	movies    []string
	moviesErr error
	resp      *recommend.Response
	err       error
	panicMsg  string
	gate      chan struct{}
	requests  []recommend.Request
	fetches   int
}

var _ recommend.API = (*fakeAPI)(nil)

func (f *fakeAPI) FetchMovies(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()
	if f.moviesErr != nil {
		return nil, f.moviesErr
	}
	return f.movies, nil
}

func (f *fakeAPI) Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.resp, f.err
}

func (f *fakeAPI) Ping(ctx context.Context) error { return nil }

func (f *fakeAPI) calls() []recommend.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recommend.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

var errBackendDown = &recommend.BackendError{Op: recommend.OpMovies, Err: errors.New("dial tcp: connection refused")}

// newTestModel returns a sized model whose movie list has been loaded from
// api.
func newTestModel(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := New(Options{
		API:       api,
		BaseURL:   "http://localhost:5000",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return send(t, m, loadMoviesCmd(context.Background(), api)())
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := sendCmd(t, m, msg)
	return next
}

func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// start runs cmd and every batched child in its own goroutine and streams
// the resulting messages. Timers inside cmd fire on their own schedule.
func start(cmd tea.Cmd) <-chan tea.Msg {
	out := make(chan tea.Msg, 64)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, child := range batch {
					run(child)
				}
				return
			}
			select {
			case out <- msg:
			default:
			}
		}()
	}
	run(cmd)
	return out
}

// waitFor returns the first message of type T from ch.
func waitFor[T any](t *testing.T, ch <-chan tea.Msg) T {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if v, ok := msg.(T); ok {
				return v
			}
		case <-timeout:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

// selectMovie moves the selector onto title.
func selectMovie(t *testing.T, m Model, title string) Model {
	t.Helper()
	for i := 0; i < len(m.selector.options); i++ {
		if m.selector.Value() == title {
			return m
		}
		m = send(t, m, keyMsg("down"))
	}
	if m.selector.Value() != title {
		t.Fatalf("could not select %q, selection is %q", title, m.selector.Value())
	}
	return m
}
