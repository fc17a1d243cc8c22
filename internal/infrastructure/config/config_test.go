package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "garment-backend", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "garment.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.NotEmpty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GARMENT_APP_PORT", "9090")
	t.Setenv("GARMENT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("GARMENT_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Path: "garment.db", BusyTimeout: 5000}
	assert.Equal(t, "garment.db?_busy_timeout=5000", c.DSN())

	c = DatabaseConfig{Path: ":memory:"}
	assert.Equal(t, "file::memory:?cache=shared", c.DSN())
}
