// Package store provides the local item index cache: a small sqlite table of
// item descriptors (id, vault, title, category) used by the picker so that
// listing and searching items does not hit the remote store on every
// keystroke. The cache never holds note bodies or any field value.
package store

import (
	"context"

	"github.com/pstuifzand/op.nvim/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/item_index_mock.go -package=mock

// ItemIndex is the read-mostly cache of remote item descriptors.
type ItemIndex interface {
	// ReplaceAll atomically swaps the cache content for the given refs.
	ReplaceAll(ctx context.Context, refs []models.ItemRef) error

	// List returns cached refs ordered by title, optionally restricted
	// to one vault (empty vaultID means all vaults).
	List(ctx context.Context, vaultID string) ([]models.ItemRef, error)

	// Search returns cached refs whose title contains query,
	// case-insensitively, ordered by title.
	Search(ctx context.Context, query string) ([]models.ItemRef, error)

	// Close releases the underlying database handle.
	Close() error
}
