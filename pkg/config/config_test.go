package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/munier-ie/stayonx/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_ADDRESS", "")
	os.Unsetenv("API_ADDRESS")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.APIAddress)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
}

func TestLoadFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "POSTGRES_USER=stayonx\nPOSTGRES_DB=consistency\nLOG_LEVEL=debug\nEXTENSION_HANDSHAKE_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	for _, k := range []string{"POSTGRES_USER", "POSTGRES_DB", "LOG_LEVEL", "EXTENSION_HANDSHAKE_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "stayonx", cfg.Postgres.User)
	assert.Equal(t, "consistency", cfg.Postgres.DB)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.HandshakeTimeout)
	assert.NoError(t, cfg.RequireSecret())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestRequireSecret(t *testing.T) {
	cfg := config.Config{}
	assert.Error(t, cfg.RequireSecret())
}
