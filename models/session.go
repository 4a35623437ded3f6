package models

// SyncState enumerates the per-session states of the reload state machine.
// Idle is both the initial and the terminal state; a new reload may only be
// issued once the prior one has returned to Idle.
type SyncState int

const (
	// StateIdle means no sync operation is in flight for the session.
	StateIdle SyncState = iota

	// StateAwaitingChoice means the session has local edits and the user
	// is being asked how to resolve the conflict.
	StateAwaitingChoice

	// StateFetching means a remote get is in flight for the session.
	StateFetching
)

func (s SyncState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateFetching:
		return "fetching"
	default:
		return "unknown"
	}
}

// ConflictChoice is the user's answer to the reload conflict prompt.
type ConflictChoice int

const (
	// ChoiceCancel aborts the reload and leaves the document untouched.
	// Prompt dismissal is treated identically.
	ChoiceCancel ConflictChoice = iota

	// ChoiceOverwrite pushes the local edits to the remote store instead
	// of fetching.
	ChoiceOverwrite

	// ChoiceDiscard abandons the local edits and fetches remote content.
	ChoiceDiscard
)

// Session binds one open document to a specific remote item. Exactly one
// session exists per open document; a remote item may be open in several
// documents at once (last writer wins).
type Session struct {
	// DocumentID is the registry key, unique per open document.
	DocumentID string

	// ItemID identifies the bound remote item.
	ItemID string

	// VaultID identifies the vault owning the bound item.
	VaultID string

	// Title is the item title at bind time, used for notifications.
	Title string

	// State is the reload state machine position for this session.
	State SyncState

	// PendingRequestID is the id of the in-flight gateway request for
	// this session, empty when State is StateIdle.
	PendingRequestID string
}
