package recommend

import (
	"errors"
	"fmt"
)

// Backend operations, used in BackendError.Op and log fields.
const (
	OpMovies    = "movies"
	OpRecommend = "recommend"
	OpPing      = "ping"
)

// ValidationError reports bad user input caught before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BackendError reports a transport failure, a non-2xx status, or an
// undecodable body from the backend.
type BackendError struct {
	Op     string
	Status int
	Err    error
}

func (e *BackendError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": backend error"
	}
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsBackendError reports whether err wraps a *BackendError.
func IsBackendError(err error) bool {
	var b *BackendError
	return errors.As(err, &b)
}
