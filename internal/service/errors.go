package service

import "errors"

var (
	// ErrNoActiveSession means an operation was invoked against a document
	// with no registered editing session. This is a lifecycle contract
	// violation: it is surfaced once and never retried.
	ErrNoActiveSession = errors.New("no active session for document")

	// ErrSyncInFlight means another save/reload is pending for the same
	// session. At most one sync operation runs per session at a time.
	ErrSyncInFlight = errors.New("sync operation already in progress")
)

// Validation errors are surfaced before any remote call is attempted, so a
// rejected input never creates partial remote state.
var (
	ErrValidationEmptyTitle    = errors.New("item title must not be empty")
	ErrValidationNoFields      = errors.New("no fields were collected")
	ErrValidationInvalidFields = errors.New("some fields are missing a name or a value")
	ErrValidationNoCandidates  = errors.New("no candidate values provided")
)
