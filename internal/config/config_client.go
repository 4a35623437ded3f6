package config

import (
	"fmt"
	"time"
)

// GatewayMode selects which gateway implementation the client wires up.
type GatewayMode string

const (
	// GatewayModeCLI shells out to the op executable.
	GatewayModeCLI GatewayMode = "cli"
	// GatewayModeConnect talks to a Connect server over HTTP.
	GatewayModeConnect GatewayMode = "connect"
)

// Defaults applied by [GetClientConfig] to fields left empty by every
// configuration source.
const (
	defaultBinaryPath      = "op"
	defaultFiletype        = "markdown"
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = 5 * time.Minute
)

// ClientGateway holds the resolved gateway settings for the client.
type ClientGateway struct {
	// Mode selects the gateway implementation.
	Mode GatewayMode
	// BinaryPath is the op executable path used in cli mode.
	BinaryPath string
	// Account is the account shorthand or ID for op invocations.
	Account string
	// ConnectHost is the Connect server base URL used in connect mode.
	ConnectHost string
	// ConnectToken is the Connect server bearer token.
	ConnectToken string
	// RequestTimeout is the per-operation gateway timeout.
	RequestTimeout time.Duration
}

// ClientNotes holds editor-facing note defaults.
type ClientNotes struct {
	// DefaultVault is the vault used when an operation does not name one.
	DefaultVault string
	// Filetype is the filetype assigned to note documents.
	Filetype string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite path of the item index cache. Empty selects an
	// in-memory index.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the item index refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Gateway contains resolved gateway mode and credentials.
	Gateway ClientGateway
	// Notes contains note document defaults.
	Notes ClientNotes
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Gateway: ClientGateway{
			Mode:           GatewayMode(cfg.Gateway.Mode),
			BinaryPath:     cfg.Gateway.BinaryPath,
			Account:        cfg.Gateway.Account,
			ConnectHost:    cfg.Gateway.ConnectHost,
			ConnectToken:   cfg.Gateway.ConnectToken,
			RequestTimeout: cfg.Gateway.RequestTimeout,
		},
		Notes: ClientNotes{
			DefaultVault: cfg.Notes.DefaultVault,
			Filetype:     cfg.Notes.Filetype,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Gateway.Mode == "" {
		cfg.Gateway.Mode = GatewayModeCLI
	}
	if cfg.Gateway.BinaryPath == "" {
		cfg.Gateway.BinaryPath = defaultBinaryPath
	}
	if cfg.Gateway.RequestTimeout == 0 {
		cfg.Gateway.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Notes.Filetype == "" {
		cfg.Notes.Filetype = defaultFiletype
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}
