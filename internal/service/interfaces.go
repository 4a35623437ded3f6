package service

import (
	"context"

	"github.com/pstuifzand/op.nvim/models"
)

// NoteSyncService binds open documents to remote secure-note items and keeps
// the two sides consistent. All operations report their outcome to the user
// through the configured notifier exactly once; the returned error exists
// for programmatic callers and tests.
type NoteSyncService interface {
	// OpenNote fetches an existing item and opens it as a document,
	// registering an editing session. Returns the new document id.
	OpenNote(ctx context.Context, itemID, vaultID string) (string, error)

	// CreateNote creates a fresh secure note remotely and opens it.
	CreateNote(ctx context.Context, title, vaultID string) (string, error)

	// Save pushes the document's current content to the remote item.
	Save(ctx context.Context, documentID string) error

	// Reload pulls remote content into the document, resolving conflicts
	// with local edits through the three-way prompt.
	Reload(ctx context.Context, documentID string) error

	// Delete removes the bound remote item and closes the document.
	Delete(ctx context.Context, documentID string) error
}

// ItemBuildService assembles new generic items from free-form candidate
// values through the interactive field wizard.
type ItemBuildService interface {
	// CreateFromCandidates walks the wizard over candidates, validates
	// the collected fields and creates the item remotely.
	CreateFromCandidates(ctx context.Context, title, vaultID string, candidates []string) (models.Item, error)
}
