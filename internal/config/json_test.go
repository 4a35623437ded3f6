package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	content := `{
		"gateway": {
			"mode": "connect",
			"binary": "/usr/local/bin/op",
			"account": "my.1password.com",
			"connect_host": "http://localhost:8080",
			"connect_token": "secret-token",
			"request_timeout": "30s"
		},
		"notes": {
			"vault": "Personal",
			"filetype": "markdown"
		},
		"storage": {
			"db": {"dsn": "/tmp/index.db"}
		},
		"workers": {
			"refresh_interval": "5m"
		}
	}`
	path := writeTempFile(t, content)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "connect", cfg.Gateway.Mode)
	assert.Equal(t, "/usr/local/bin/op", cfg.Gateway.BinaryPath)
	assert.Equal(t, "my.1password.com", cfg.Gateway.Account)
	assert.Equal(t, "http://localhost:8080", cfg.Gateway.ConnectHost)
	assert.Equal(t, "secret-token", cfg.Gateway.ConnectToken)
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, "Personal", cfg.Notes.DefaultVault)
	assert.Equal(t, "markdown", cfg.Notes.Filetype)
	assert.Equal(t, "/tmp/index.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `{"gateway": {`)

	cfg, err := parseJSON(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempFile(t, `{"workers": {"refresh_interval": "soon"}}`)

	cfg, err := parseJSON(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Durations may also be given as nanosecond numbers.
	path := writeTempFile(t, `{"gateway": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeTempFile(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	path := writeTempFile(t, `{"notes": {"vault": "Work"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "Work", cfg.Notes.DefaultVault)
	assert.Empty(t, cfg.Gateway.Mode)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
