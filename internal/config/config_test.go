package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
api:
  base_url: https://shop.internal
  data_dir: /srv/feeds
store:
  backend: redis
  redis_addr: cache:6379
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.internal", cfg.API.BaseURL)
	assert.Equal(t, "/srv/feeds", cfg.API.DataDir)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched sections keep their defaults
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://from-file\n"), 0o644))
	t.Setenv("SNEAKERSTORE_API_URL", "https://from-env")
	t.Setenv("SNEAKERSTORE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t this is not yaml"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
