package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestJSON(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseJSON(t *testing.T) {
	path := t.TempDir() + "/config.json"
	writeTestJSON(t, path, `{
		"app": {
			"password_hash_key": "phk",
			"token_sign_key": "tsk",
			"token_issuer": "vault-hub-server",
			"token_duration": "1h"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/vaulthub"},
			"cache": {"path": "/tmp/cache.db"}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "15s"},
		"workers": {"sync_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "phk", cfg.App.PasswordHashKey)
	assert.Equal(t, "tsk", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/vaulthub", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.Cache.Path)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := t.TempDir() + "/config.json"
	writeTestJSON(t, path, `{"workers": {"sync_interval": 60000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := t.TempDir() + "/config.json"
	writeTestJSON(t, path, `{"workers": {"sync_interval": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
}
