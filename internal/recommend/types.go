package recommend

import "strings"

const (
	// UnknownTitle is shown for a recommendation without a title.
	UnknownTitle = "Unknown Title"
	// Uncategorized is the single badge shown when a recommendation has no genres.
	Uncategorized = "Uncategorized"
)

// Request is the body of POST /recommend.
type Request struct {
	Movie string `json:"movie" validate:"required"`
	Num   int    `json:"num" validate:"gte=1,lte=20"`
}

// Response mirrors the payload returned by POST /recommend.
type Response struct {
	SelectedMovie   string   `json:"selected_movie"`
	Recommendations []Result `json:"recommendations"`
}

// Result is one recommended movie. Both fields may be missing on the wire.
type Result struct {
	Title  string `json:"title,omitempty"`
	Genres string `json:"genres,omitempty"`
}

// DisplayTitle returns the title, or UnknownTitle when it is blank.
func (r Result) DisplayTitle() string {
	if r.Title == "" {
		return UnknownTitle
	}
	return r.Title
}

// GenreBadges splits the space-separated genre list into badge labels in
// their original order. Duplicates are kept. An empty list yields a single
// Uncategorized badge.
func (r Result) GenreBadges() []string {
	genres := strings.Fields(r.Genres)
	if len(genres) == 0 {
		return []string{Uncategorized}
	}
	return genres
}
