// Package gateway provides transport-layer abstractions for talking to the
// remote secrets manager.
//
// The primary abstraction is [ItemGateway], which decouples the sync engine
// from the underlying protocol. The package ships two implementations: a CLI
// gateway that shells out to the op binary ([NewCLIGateway]) and an HTTP/REST
// gateway for a Connect server ([NewConnectGateway]).
//
// Error values defined in errors.go are mapped from tool error lines and
// HTTP status codes so that callers can use [errors.Is] for
// transport-agnostic error handling.
package gateway

import (
	"context"

	"github.com/pstuifzand/op.nvim/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/item_gateway_mock.go -package=mock

// FieldAssignment is a single field update pushed by an edit operation.
type FieldAssignment struct {
	// Field is the assignment target in the tool's field syntax
	// (e.g. "notesPlain").
	Field string

	// Value is the new field content.
	Value string
}

// ItemGateway defines transport-agnostic access to the remote secrets store.
// Implementations are responsible for serialisation and for mapping
// transport-level failures to [*GatewayError] and the sentinel values
// defined in this package.
type ItemGateway interface {
	// GetItem fetches a single item with all its fields.
	GetItem(ctx context.Context, itemID, vaultID string) (models.Item, error)

	// EditItem applies one field assignment to an existing item and
	// returns the updated item.
	EditItem(ctx context.Context, itemID, vaultID string, assignment FieldAssignment) (models.Item, error)

	// CreateItem creates a new item with the given title and category in
	// the target vault. Extra fields may seed custom fields on creation.
	CreateItem(ctx context.Context, title, vaultID string, category models.Category, fields []models.ItemField) (models.Item, error)

	// DeleteItem permanently removes an item from its vault.
	DeleteItem(ctx context.Context, itemID, vaultID string) error

	// ListItems returns lightweight descriptors for all items, optionally
	// restricted to one vault (empty vaultID means all vaults). An empty
	// result is a valid outcome, not an error.
	ListItems(ctx context.Context, vaultID string) ([]models.ItemRef, error)

	// ListVaults returns the vaults visible to the signed-in account.
	ListVaults(ctx context.Context) ([]models.Vault, error)
}

// AccountGateway reports sign-in state. Only the CLI transport implements a
// meaningful check; the Connect transport is authenticated by token.
type AccountGateway interface {
	// Whoami returns the signed-in account identifier, or
	// [ErrUnauthorized] when no account is signed in.
	Whoami(ctx context.Context) (string, error)
}

// Invoker runs one secrets-manager command and returns its raw output
// envelope. It exists as a seam between the CLI gateway and the host
// process execution machinery.
type Invoker interface {
	// Invoke runs the tool with the given arguments. The returned error
	// reports only invocation failures (binary missing, context
	// cancelled); remote errors travel in the envelope's ErrorLines.
	Invoke(ctx context.Context, args ...string) (models.CommandOutput, error)
}
