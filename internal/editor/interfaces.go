// Package editor defines the boundary contracts between the sync engine and
// the host editing environment: document allocation and lifecycle triggers,
// interactive prompting, and user-visible notifications. The package also
// ships an in-memory [Buffers] implementation backing the TUI and tests.
package editor

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/editor_mock.go -package=mock

// ErrCancelled is returned by prompt operations when the user dismisses the
// prompt. Dismissal is a valid, explicit terminal input, not a failure.
var ErrCancelled = errors.New("cancelled by user")

// ErrNoDocument is returned for operations on an unknown document id.
var ErrNoDocument = errors.New("no such document")

// Event identifies a document lifecycle trigger.
type Event int

const (
	// EventContentChanged fires after the document's line content changed.
	EventContentChanged Event = iota

	// EventWriteRequested fires when the user asks to write the document.
	EventWriteRequested

	// EventReadRequested fires when the user asks to re-read the document.
	EventReadRequested

	// EventClosed fires when the document is closed.
	EventClosed
)

// TriggerFunc handles a lifecycle event for one document.
type TriggerFunc func(documentID string)

// AllocateOptions configures a freshly allocated document.
type AllocateOptions struct {
	// Title is the display name for the document.
	Title string

	// Filetype is the content type used for highlighting.
	Filetype string

	// Writable controls whether the host accepts local edits.
	Writable bool

	// Lines seeds the initial document content.
	Lines []string
}

// Buffers is the document lifecycle controller: it owns every open document,
// its line content, its modified flag, and its lifecycle triggers.
type Buffers interface {
	// Allocate creates a document and returns its id. The fresh document
	// is unmodified regardless of the seeded content.
	Allocate(opts AllocateOptions) string

	// Lines returns the current document content.
	Lines(documentID string) ([]string, error)

	// ReplaceLines swaps the document's full line range. The modified
	// flag is set and content-changed triggers fire; callers that
	// replace content on behalf of the remote store follow up with
	// SetModified(false).
	ReplaceLines(documentID string, lines []string) error

	// Modified reports the document's unsaved-changes flag.
	Modified(documentID string) (bool, error)

	// SetModified overrides the unsaved-changes flag.
	SetModified(documentID string, modified bool) error

	// SetFiletype reassigns the document's content type.
	SetFiletype(documentID, filetype string) error

	// RegisterTrigger attaches fn to the given lifecycle event.
	RegisterTrigger(documentID string, event Event, fn TriggerFunc) error

	// Close fires closed triggers and forgets the document.
	Close(documentID string) error
}

// Prompter is the interactive prompting boundary. Every method blocks the
// calling goroutine until the user responds or dismisses; dismissal is
// reported as [ErrCancelled].
type Prompter interface {
	// Input asks for free-form text, pre-filled with initial.
	Input(ctx context.Context, prompt, initial string) (string, error)

	// Select asks the user to pick one of options and returns its index.
	Select(ctx context.Context, prompt string, options []string) (int, error)

	// Confirm asks a multiple-choice question and returns the index of
	// the chosen answer.
	Confirm(ctx context.Context, prompt string, choices []string) (int, error)
}

// Notifier delivers exactly one user-visible message per completed or failed
// operation.
type Notifier interface {
	Info(message string)
	Error(message string)
}
