package models

import "time"

// Category identifies the kind of remote item stored in the secrets manager.
// Values follow the wire representation used by the op CLI and the Connect
// REST API.
type Category string

const (
	// SecureNote is the category synchronized by the note editing core.
	SecureNote Category = "SECURE_NOTE"

	// Login represents authentication credentials built from free-form
	// candidates by the field wizard.
	Login Category = "LOGIN"
)

// FieldPurpose marks the semantic role of a field within an item.
type FieldPurpose string

const (
	// PurposeNotes marks the plain-note body field. Only this field
	// participates in document synchronization.
	PurposeNotes FieldPurpose = "NOTES"

	// PurposeUsername and PurposePassword mark the well-known login fields.
	PurposeUsername FieldPurpose = "USERNAME"
	PurposePassword FieldPurpose = "PASSWORD"
)

// ItemField is a single named, typed value within a remote item.
type ItemField struct {
	// ID is the field identifier assigned by the remote store.
	ID string `json:"id"`

	// Type is the remote field type (e.g. STRING, CONCEALED, URL).
	Type string `json:"type,omitempty"`

	// Purpose is the semantic role of the field, empty for custom fields.
	Purpose FieldPurpose `json:"purpose,omitempty"`

	// Label is the user-visible field name.
	Label string `json:"label,omitempty"`

	// Value holds the field content in plain form.
	Value string `json:"value,omitempty"`
}

// Item represents a single secret record in the remote store.
// It is read and written only through the gateway; the sync core never
// persists items locally.
type Item struct {
	// ID is the remote item identifier, unique within a vault.
	ID string `json:"id"`

	// Title is the human-readable item name.
	Title string `json:"title"`

	// Category defines the item kind.
	Category Category `json:"category"`

	// Vault identifies the vault that owns the item.
	Vault Vault `json:"vault"`

	// Fields is the ordered set of fields attached to the item.
	Fields []ItemField `json:"fields,omitempty"`

	// Version is the remote revision counter, incremented on every edit.
	Version int `json:"version,omitempty"`

	// CreatedAt is the remote creation timestamp.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last remote modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NoteField returns the field carrying the plain-note body, or nil when the
// item has no such field.
func (it *Item) NoteField() *ItemField {
	for i := range it.Fields {
		if it.Fields[i].Purpose == PurposeNotes {
			return &it.Fields[i]
		}
	}
	return nil
}

// FieldByLabel returns the first field with the given label, or nil.
func (it *Item) FieldByLabel(label string) *ItemField {
	for i := range it.Fields {
		if it.Fields[i].Label == label {
			return &it.Fields[i]
		}
	}
	return nil
}
