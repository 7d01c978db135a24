package kakao

import (
	"errors"
	"fmt"
)

// Sentinel errors for Kakao API operations.
var (
	ErrNoAPIKey = errors.New("kakao: REST API key not configured")
	ErrNotFound = errors.New("kakao: no matching book")
)

// StatusError reports a non-success HTTP response from Kakao, carrying the
// upstream status code verbatim. Distinct from ErrNotFound: a detail lookup
// that returns zero documents is a not-found, not a transport failure.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kakao: unexpected status %d", e.Status)
}

// Error wraps an underlying error with operation context.
type Error struct {
	Op   string // Operation: "search", "getDetail"
	ISBN string // If applicable
	Err  error
}

func (e *Error) Error() string {
	if e.ISBN != "" {
		return fmt.Sprintf("kakao %s [%s]: %v", e.Op, e.ISBN, e.Err)
	}
	return fmt.Sprintf("kakao %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, isbn string, err error) error {
	return &Error{Op: op, ISBN: isbn, Err: err}
}
