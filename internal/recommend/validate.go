package recommend

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Count limits for a recommendation request.
const (
	DefaultCount = 8
	MinCount     = 1
	MaxCount     = 20
)

// Validation messages shown to the operator.
const (
	MsgSelectMovie = "Please select a movie first."
	MsgCountRange  = "Please enter a number between 1 and 20."
)

var (
	validateOnce sync.Once
	structCheck  *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		structCheck = validator.New(validator.WithRequiredStructEnabled())
	})
	return structCheck
}

// Catalogue is the movie list loaded at startup, kept in server order.
type Catalogue struct {
	titles []string
	index  map[string]struct{}
}

// NewCatalogue copies titles into a Catalogue.
func NewCatalogue(titles []string) Catalogue {
	c := Catalogue{
		titles: make([]string, len(titles)),
		index:  make(map[string]struct{}, len(titles)),
	}
	copy(c.titles, titles)
	for _, title := range titles {
		c.index[title] = struct{}{}
	}
	return c
}

// Titles returns a copy of the titles in server order.
func (c Catalogue) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// Len returns the number of titles.
func (c Catalogue) Len() int {
	return len(c.titles)
}

// Contains reports whether title was part of the loaded list.
func (c Catalogue) Contains(title string) bool {
	_, ok := c.index[title]
	return ok
}

// ParseCount reads the leading integer of raw the way a lenient form field
// would: surrounding whitespace and trailing garbage are ignored ("12abc" is
// 12). A value with no leading digits, or zero, falls back to DefaultCount.
// The result is not range checked.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultCount
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow gets here; keep the sign so the range check rejects it.
		if s[0] == '-' {
			return MinCount - 1
		}
		return MaxCount + 1
	}
	if n == 0 {
		return DefaultCount
	}
	return n
}

// NewRequest validates the operator's input against the loaded catalogue and
// builds a Request. The returned error is always a *ValidationError.
func NewRequest(movie, rawCount string, catalogue Catalogue) (Request, error) {
	req := Request{Movie: movie, Num: ParseCount(rawCount)}
	if err := structValidator().Struct(req); err != nil {
		return Request{}, translate(err)
	}
	if !catalogue.Contains(movie) {
		return Request{}, &ValidationError{Field: "movie", Message: MsgSelectMovie}
	}
	return req, nil
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	switch fieldErrs[0].Field() {
	case "Movie":
		return &ValidationError{Field: "movie", Message: MsgSelectMovie}
	case "Num":
		return &ValidationError{Field: "num", Message: MsgCountRange}
	default:
		return &ValidationError{Field: strings.ToLower(fieldErrs[0].Field()), Message: fieldErrs[0].Error()}
	}
}
