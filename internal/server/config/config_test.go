package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "secretKey", cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionValidityDuration)
	assert.Empty(t, cfg.EncryptionKey)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("ENCRYPTION_KEY", "env-key")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "env-key", cfg.EncryptionKey)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", ":7070", "-k", "flag-key", "-t", "30")
	t.Setenv("ADDRESS", ":9090")

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "flag-key", cfg.EncryptionKey)
	assert.Equal(t, 30*time.Minute, cfg.SessionValidityDuration)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr": ":6060",
		"database_dsn": "postgres://json",
		"encryption_key": "json-key",
		"session_validity_duration_minutes": 5
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, "json-key", cfg.EncryptionKey)
	assert.Equal(t, 5*time.Minute, cfg.SessionValidityDuration)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Error(t, cfg.Validate())

	cfg.EncryptionKey = "key"
	assert.NoError(t, cfg.Validate())
}
