package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/five82/cinematch/internal/recommend"
)

func TestRenderRecommendations_EmptyList(t *testing.T) {
	for _, recs := range [][]recommend.Result{nil, {}} {
		r := renderRecommendations("Inception", recs)
		if r.heading != `Similar to "Inception"` {
			t.Fatalf("heading = %q", r.heading)
		}
		if r.countLabel != "0 Results" {
			t.Fatalf("countLabel = %q, want 0 Results", r.countLabel)
		}
		if r.mode != resultsEmpty || r.message != emptyText {
			t.Fatalf("mode = %v message = %q, want empty state", r.mode, r.message)
		}
		if len(r.cards) != 0 {
			t.Fatalf("cards = %d, want none", len(r.cards))
		}
	}
}

func TestRenderRecommendations_Cards(t *testing.T) {
	recs := []recommend.Result{
		{Title: "The Matrix", Genres: "Action Sci-Fi"},
		{Title: "Heat", Genres: "Crime  Drama Crime"},
		{},
	}
	r := renderRecommendations("Speed", recs)

	if r.mode != resultsCards {
		t.Fatalf("mode = %v, want cards", r.mode)
	}
	if r.countLabel != "3 Results" {
		t.Fatalf("countLabel = %q, want 3 Results", r.countLabel)
	}

	want := []card{
		{title: "The Matrix", badges: []string{"Action", "Sci-Fi"}},
		{title: "Heat", badges: []string{"Crime", "Drama", "Crime"}},
		{title: recommend.UnknownTitle, badges: []string{recommend.Uncategorized}},
	}
	if !reflect.DeepEqual(r.cards, want) {
		t.Fatalf("cards = %#v, want %#v", r.cards, want)
	}
}

func TestRenderRecommendations_HeadingKeepsNameVerbatim(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{`"Great Performances" Cats (1998)`, `Similar to ""Great Performances" Cats (1998)"`},
		{`AC\DC: Let There Be Rock`, `Similar to "AC\DC: Let There Be Rock"`},
		{"Amélie (2001)", `Similar to "Amélie (2001)"`},
	}
	for _, tt := range tests {
		if got := renderRecommendations(tt.name, nil).heading; got != tt.want {
			t.Fatalf("heading for %q = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResultsView_ShowsCards(t *testing.T) {
	api := &fakeAPI{movies: []string{"Speed", "Heat"}}
	m := newTestModel(t, api)

	m = send(t, m, recommendationsMsg{
		req: recommend.Request{Movie: "Speed", Num: 2},
		resp: &recommend.Response{
			SelectedMovie: "Speed",
			Recommendations: []recommend.Result{
				{Title: "The Matrix", Genres: "Action Sci-Fi"},
				{Genres: ""},
			},
		},
	})

	view := m.View()
	for _, want := range []string{`Similar to "Speed"`, "2 Results", "The Matrix", "Action", "Sci-Fi", "Unknown Title", "Uncategorized"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, loadingText) {
		t.Fatalf("view still shows the loading block:\n%s", view)
	}
}

func TestResultsView_EmptyState(t *testing.T) {
	api := &fakeAPI{movies: []string{"Inception"}}
	m := newTestModel(t, api)

	m = send(t, m, recommendationsMsg{
		req:  recommend.Request{Movie: "Inception", Num: 8},
		resp: &recommend.Response{SelectedMovie: "Inception"},
	})

	view := m.View()
	for _, want := range []string{`Similar to "Inception"`, "0 Results", emptyText} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestResultsView_LoadingReplacesCards(t *testing.T) {
	api := &fakeAPI{movies: []string{"Speed"}}
	m := newTestModel(t, api)
	m = send(t, m, recommendationsMsg{
		req: recommend.Request{Movie: "Speed", Num: 1},
		resp: &recommend.Response{
			SelectedMovie:   "Speed",
			Recommendations: []recommend.Result{{Title: "The Matrix", Genres: "Action"}},
		},
	})

	m = selectMovie(t, m, "Speed")
	m, _ = sendCmd(t, m, keyMsg("ctrl+r"))

	view := m.View()
	if !strings.Contains(view, loadingText) {
		t.Fatalf("view missing loading block:\n%s", view)
	}
	if strings.Contains(view, "The Matrix") {
		t.Fatalf("previous cards still visible while loading:\n%s", view)
	}
}

func TestRenderCards_ColumnsFollowWidth(t *testing.T) {
	m := New(Options{API: &fakeAPI{}})
	m.results = renderRecommendations("Speed", []recommend.Result{
		{Title: "A"}, {Title: "B"}, {Title: "C"},
	})

	wide := m.renderCards(3*CardWidth + 2*CardGap)
	narrow := m.renderCards(CardWidth)

	if got, want := strings.Count(wide, "\n"), strings.Count(narrow, "\n")/3; got > want+1 {
		t.Fatalf("wide layout has %d lines, expected roughly a third of narrow (%d)", got, strings.Count(narrow, "\n"))
	}
}
