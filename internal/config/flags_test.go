package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectAddress_String tests the String method of ConnectAddress
func TestConnectAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     ConnectAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     ConnectAddress{},
			expected: "",
		},
		{
			name:     "http with port",
			addr:     ConnectAddress{URL: "http://localhost:8080"},
			expected: "http://localhost:8080",
		},
		{
			name:     "https without port",
			addr:     ConnectAddress{URL: "https://connect.example.com"},
			expected: "https://connect.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestConnectAddress_Set tests the Set method of ConnectAddress
func TestConnectAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
		expectedURL string
	}{
		{
			name:        "valid http",
			input:       "http://localhost:8080",
			expectError: false,
			expectedURL: "http://localhost:8080",
		},
		{
			name:        "valid https",
			input:       "https://connect.example.com",
			expectError: false,
			expectedURL: "https://connect.example.com",
		},
		{
			name:        "missing scheme",
			input:       "localhost:8080",
			expectError: true,
		},
		{
			name:        "wrong scheme",
			input:       "ftp://localhost:8080",
			expectError: true,
			errorMsg:    "need address in a form `http[s]://host[:port]`",
		},
		{
			name:        "missing host",
			input:       "http://",
			expectError: true,
			errorMsg:    "connect address is missing a host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr ConnectAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.EqualError(t, err, tt.errorMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, addr.URL)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-mode", "connect",
				"-op-binary", "/usr/local/bin/op",
				"-account", "my.1password.com",
				"-connect-host", "http://localhost:8080",
				"-connect-token", "secret-token",
				"-request-timeout", "30s",
				"-d", "/tmp/index.db",
				"-vault", "Personal",
				"-filetype", "markdown",
				"-refresh-interval", "5m",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "connect", cfg.Gateway.Mode)
				assert.Equal(t, "/usr/local/bin/op", cfg.Gateway.BinaryPath)
				assert.Equal(t, "my.1password.com", cfg.Gateway.Account)
				assert.Equal(t, "http://localhost:8080", cfg.Gateway.ConnectHost)
				assert.Equal(t, "secret-token", cfg.Gateway.ConnectToken)
				assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
				assert.Equal(t, "/tmp/index.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "Personal", cfg.Notes.DefaultVault)
				assert.Equal(t, "markdown", cfg.Notes.Filetype)
				assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-account", "work.1password.com",
				"-vault", "Work",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "work.1password.com", cfg.Gateway.Account)
				assert.Equal(t, "Work", cfg.Notes.DefaultVault)
				assert.Empty(t, cfg.Gateway.Mode)
				assert.Empty(t, cfg.Gateway.ConnectHost)
				assert.Empty(t, cfg.Storage.DB.DSN)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Gateway.Mode)
				assert.Empty(t, cfg.Gateway.BinaryPath)
				assert.Empty(t, cfg.Gateway.ConnectHost)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Gateway.RequestTimeout)
				assert.Zero(t, cfg.Workers.RefreshInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestConnectAddress_SetAndString verifies Set followed by String round-trips.
func TestConnectAddress_SetAndString(t *testing.T) {
	var addr ConnectAddress
	require.NoError(t, addr.Set("https://connect.example.com:8443"))
	assert.Equal(t, "https://connect.example.com:8443", addr.String())
}
