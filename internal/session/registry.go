// Package session tracks the binding between open documents and remote
// items. The registry is plain in-memory bookkeeping with process lifetime:
// entries are created when a document is opened for an item and removed one
// by one when documents close, never bulk-cleared.
package session

import (
	"sync"

	"github.com/pstuifzand/op.nvim/models"
)

// Registry maps document ids to active editing sessions. A single registry
// is constructed at startup and handed to every component that needs it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*models.Session)}
}

// Create registers a session binding documentID to the given item,
// overwriting any prior session for that document.
func (r *Registry) Create(documentID string, item models.Item) *models.Session {
	s := &models.Session{
		DocumentID: documentID,
		ItemID:     item.ID,
		VaultID:    item.Vault.ID,
		Title:      item.Title,
		State:      models.StateIdle,
	}

	r.mu.Lock()
	r.sessions[documentID] = s
	r.mu.Unlock()

	return s
}

// Get returns the session for documentID, or nil when none is registered.
func (r *Registry) Get(documentID string) *models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[documentID]
}

// Destroy removes the session for documentID. Destroying an unknown id is a
// no-op.
func (r *Registry) Destroy(documentID string) {
	r.mu.Lock()
	delete(r.sessions, documentID)
	r.mu.Unlock()
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
