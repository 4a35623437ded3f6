package gateway

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthorized means the account is not signed in or the Connect
	// token was rejected.
	ErrUnauthorized = errors.New("not signed in")

	// ErrNotFound means the requested item or vault does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrBadRequest means the remote store rejected the request shape.
	ErrBadRequest = errors.New("bad request")

	// ErrUnavailable means the remote store could not be reached.
	ErrUnavailable = errors.New("secrets store unavailable")
)

// GatewayError carries the verbatim error lines returned by a failed remote
// operation. The first line is what gets surfaced to the user; Unwrap
// exposes the mapped sentinel for errors.Is checks.
type GatewayError struct {
	// Op is the gateway operation that failed ("get", "edit", ...).
	Op string

	// Lines holds the error output, never empty for remote failures.
	Lines []string

	err error
}

func (e *GatewayError) Error() string {
	if len(e.Lines) == 0 {
		return e.Op + ": remote operation failed"
	}
	return e.Lines[0]
}

func (e *GatewayError) Unwrap() error { return e.err }

// NewGatewayError builds a GatewayError for op, classifying the error lines
// onto one of the package sentinels where the text is recognisable.
func NewGatewayError(op string, lines []string) *GatewayError {
	return &GatewayError{Op: op, Lines: lines, err: classify(lines)}
}

func classify(lines []string) error {
	joined := strings.ToLower(strings.Join(lines, "\n"))
	switch {
	case strings.Contains(joined, "isn't an item"),
		strings.Contains(joined, "isn't a vault"),
		strings.Contains(joined, "not found"):
		return ErrNotFound
	case strings.Contains(joined, "not currently signed in"),
		strings.Contains(joined, "signed out"),
		strings.Contains(joined, "authorization"):
		return ErrUnauthorized
	case strings.Contains(joined, "connection refused"),
		strings.Contains(joined, "could not connect"):
		return ErrUnavailable
	default:
		return nil
	}
}
