package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "adperf.db", cfg.Store.SQLitePath)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_SQLITE_PATH", "/tmp/reports.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, configs.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/reports.db", cfg.Store.SQLitePath)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nENV=dev\n"), 0o600))
	// godotenv never overrides variables that are already set
	t.Setenv("ENV", "staging")
	t.Setenv("STORE_DRIVER", "")
	require.NoError(t, os.Unsetenv("STORE_DRIVER"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "staging", cfg.Env)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, `unknown store driver "mongo"`)
}
