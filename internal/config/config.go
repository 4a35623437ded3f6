package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Gateway holds settings for reaching the secrets store: which
	// transport to use (op CLI or Connect server) and its credentials.
	// The OP_ prefix matches the environment variables the official op
	// tooling already reads (OP_ACCOUNT, OP_CONNECT_HOST, OP_CONNECT_TOKEN).
	Gateway Gateway `envPrefix:"OP_"`

	// Notes holds editor-facing defaults for secure note documents.
	Notes Notes `envPrefix:"NOTES_"`

	// Storage holds configuration for the local item index cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Gateway holds transport and credential settings for the secrets store.
type Gateway struct {
	// Mode selects the gateway implementation: "cli" shells out to the op
	// binary, "connect" talks to a Connect server over HTTP.
	// Env: OP_GATEWAY_MODE
	Mode string `env:"GATEWAY_MODE"`

	// BinaryPath is the path to the op executable used in cli mode.
	// Env: OP_BINARY
	BinaryPath string `env:"BINARY"`

	// Account is the account shorthand or ID passed to every op
	// invocation in cli mode. Empty means the CLI default account.
	// Env: OP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// ConnectHost is the base URL of the Connect server used in connect
	// mode (e.g. "http://localhost:8080").
	// Env: OP_CONNECT_HOST
	ConnectHost string `env:"CONNECT_HOST"`

	// ConnectToken is the bearer token for the Connect server.
	// Env: OP_CONNECT_TOKEN
	ConnectToken string `env:"CONNECT_TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single gateway
	// operation before it is cancelled (e.g. "30s", "1m").
	// Env: OP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notes holds editor-facing defaults for secure note documents.
type Notes struct {
	// DefaultVault is the vault ID or name used when an operation does
	// not name one. Empty means all vaults for listings and a required
	// prompt for creation.
	// Env: NOTES_VAULT
	DefaultVault string `env:"VAULT"`

	// Filetype is the filetype assigned to note documents (e.g.
	// "markdown").
	// Env: NOTES_FILETYPE
	Filetype string `env:"FILETYPE"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the item index database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local item index cache.
type DB struct {
	// DSN is the sqlite file path for the item index cache. Empty means
	// an in-memory index that does not survive restarts.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the item index is refreshed from
	// the remote store.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
