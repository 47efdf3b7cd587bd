package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cinematch/internal/state"
)

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp 127.0.0.1:5000: connect: connection refused"), "OFFLINE"},
		{"dns", errors.New("dial tcp: lookup nowhere: no such host"), "HOST NOT FOUND"},
		{"timeout", errors.New("i/o timeout"), "TIMEOUT"},
		{"deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), "TIMEOUT"},
		{"status", errors.New("backend returned status 503"), "UNHEALTHY"},
		{"other", errors.New("boom"), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyConnectionError(tt.err); got != tt.want {
				t.Fatalf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatLatency(t *testing.T) {
	if got := formatLatency(200 * time.Microsecond); got != "<1ms" {
		t.Fatalf("formatLatency(200µs) = %q, want <1ms", got)
	}
	if got := formatLatency(42*time.Millisecond + 300*time.Microsecond); got != "42ms" {
		t.Fatalf("formatLatency = %q, want 42ms", got)
	}
}

func TestHeader_HealthIndicator(t *testing.T) {
	refused := errors.New("connect: connection refused")
	tests := []struct {
		name    string
		updates []error
		want    string
	}{
		{"checking", nil, "CHECKING"},
		{"online", []error{nil}, "ONLINE"},
		{"one failure retries", []error{refused}, "RETRYING"},
		{"two failures offline", []error{refused, refused}, "OFFLINE"},
		{"recovered", []error{refused, refused, nil}, "ONLINE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &state.Store{}
			for _, err := range tt.updates {
				store.Update(10*time.Millisecond, err)
			}
			m := New(Options{API: &fakeAPI{}, Store: store})
			m = send(t, m, fetchSnapshotCmd(store)())
			m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

			if got := m.renderHeader(); !strings.Contains(got, tt.want) {
				t.Fatalf("header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader_NoStoreHidesHealth(t *testing.T) {
	m := newTestModel(t, &fakeAPI{movies: []string{"Heat", "Speed"}})
	header := m.renderHeader()
	if strings.Contains(header, "●") {
		t.Fatalf("header without a store shows health: %q", header)
	}
	if !strings.Contains(header, "Movies:") {
		t.Fatalf("header = %q, want movie count", header)
	}
	if !strings.Contains(header, "http://localhost:5000") {
		t.Fatalf("header = %q, want API URL", header)
	}
}

func TestHeader_LoadStates(t *testing.T) {
	m := New(Options{API: &fakeAPI{}})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.renderHeader(), "Loading") {
		t.Fatalf("header before load = %q", m.renderHeader())
	}

	m = send(t, m, moviesLoadedMsg{err: errBackendDown})
	if !strings.Contains(m.renderHeader(), "No movies") {
		t.Fatalf("header after failed load = %q", m.renderHeader())
	}
}

func TestCommandBar_FollowsFocus(t *testing.T) {
	m := newTestModel(t, &fakeAPI{movies: []string{"Heat"}})
	if !strings.Contains(m.renderCommandBar(), "Filter") {
		t.Fatalf("select hints = %q", m.renderCommandBar())
	}

	m = send(t, m, keyMsg("tab"))
	if !strings.Contains(m.renderCommandBar(), "0-9") {
		t.Fatalf("count hints = %q", m.renderCommandBar())
	}

	m = send(t, m, keyMsg("tab"))
	if bar := m.renderCommandBar(); !strings.Contains(bar, "Scroll") || !strings.Contains(bar, m.theme.Name) {
		t.Fatalf("trigger hints = %q", bar)
	}
}

func TestSurfacePainter_KeepsSpacing(t *testing.T) {
	p := newSurfacePainter("#101010")
	plain := lipgloss.NewStyle()

	if got := p.text("", plain); got != "" {
		t.Fatalf("text(\"\") = %q, want empty", got)
	}
	if got := lipgloss.Width(p.text("a  b", plain)); got != 4 {
		t.Fatalf("text width = %d, want 4", got)
	}
	if got := lipgloss.Width(p.join([]string{"a", "b", "c"}, "  ")); got != 5 {
		t.Fatalf("join width = %d, want 5", got)
	}
	if got := lipgloss.Width(p.fill("abc", 10)); got != 10 {
		t.Fatalf("fill width = %d, want 10", got)
	}
}
