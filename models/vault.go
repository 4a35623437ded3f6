package models

// Vault identifies a container of items in the remote secrets store.
type Vault struct {
	// ID is the remote vault identifier.
	ID string `json:"id"`

	// Name is the human-readable vault name, empty in item references
	// returned by some list operations.
	Name string `json:"name,omitempty"`
}

// ItemRef is a lightweight item descriptor returned by list operations and
// kept in the local index cache. It never carries field values.
type ItemRef struct {
	// ID is the remote item identifier.
	ID string `json:"id"`

	// VaultID is the owning vault identifier.
	VaultID string `json:"vault_id"`

	// Title is the human-readable item name.
	Title string `json:"title"`

	// Category defines the item kind.
	Category Category `json:"category"`
}
