package ui

import (
	"strings"
	"testing"
)

func TestToast_OlderExpiryKeepsNewerVisible(t *testing.T) {
	m := New(Options{API: &fakeAPI{}})

	m.showToast("first", toastInfo)
	firstSeq := m.toast.seq
	m.showToast("second", toastError)

	m = send(t, m, toastExpiredMsg{seq: firstSeq})
	if !m.toast.visible || m.toast.message != "second" {
		t.Fatalf("toast = %+v, want second still visible", m.toast)
	}

	m = send(t, m, toastExpiredMsg{seq: m.toast.seq})
	if m.toast.visible {
		t.Fatal("toast should hide once its own expiry arrives")
	}
}

func TestToast_ExpiresAfterDuration(t *testing.T) {
	m := New(Options{API: &fakeAPI{}})
	cmd := m.showToast("hello", toastSuccess)

	msg := waitFor[toastExpiredMsg](t, start(cmd))
	if msg.seq != m.toast.seq {
		t.Fatalf("expiry seq = %d, want %d", msg.seq, m.toast.seq)
	}
}

func TestToast_Render(t *testing.T) {
	m := newTestModel(t, &fakeAPI{movies: []string{"Heat"}})

	view := m.renderToast()
	if !strings.Contains(view, "✓") || !strings.Contains(view, toastMoviesLoaded) {
		t.Fatalf("renderToast = %q, want success toast for loaded movies", view)
	}

	m.toast.visible = false
	if got := m.renderToast(); got != "" {
		t.Fatalf("hidden toast rendered %q", got)
	}
}

func TestToast_LoadFailure(t *testing.T) {
	m := newTestModel(t, &fakeAPI{moviesErr: errBackendDown})

	if m.toast.kind != toastError || m.toast.message != toastMoviesFailed {
		t.Fatalf("toast = %+v, want load failure", m.toast)
	}
	if !strings.Contains(m.renderToast(), "✗") {
		t.Fatalf("renderToast = %q, want error glyph", m.renderToast())
	}
}
