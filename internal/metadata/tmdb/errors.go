package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for TMDB API operations.
var (
	ErrNoAPIKey = errors.New("tmdb: API key not configured")
	ErrNotFound = errors.New("tmdb: not found")
)

// StatusError reports a non-success HTTP response from TMDB, carrying the
// upstream status code verbatim.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d", e.Status)
}

// Error wraps an underlying error with operation context.
type Error struct {
	Op      string // Operation: "search", "getDetail"
	MovieID string // If applicable
	Err     error
}

func (e *Error) Error() string {
	if e.MovieID != "" {
		return fmt.Sprintf("tmdb %s [%s]: %v", e.Op, e.MovieID, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, movieID string, err error) error {
	return &Error{Op: op, MovieID: movieID, Err: err}
}
