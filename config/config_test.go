package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Server.IdempotencyEnabled)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSOrigins)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "tile_estimator", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
		assert.True(t, cfg.LocalStore.Enabled)
		assert.Equal(t, "data/customers.db", cfg.LocalStore.Path)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://mongo:27017")
		_ = os.Setenv("MONGODB_DATABASE", "shop")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		_ = os.Setenv("LOCAL_STORE_PATH", "/var/lib/tiles.db")
		_ = os.Setenv("LOCAL_STORE_ENABLED", "false")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI)
		assert.Equal(t, "shop", cfg.Database.DatabaseName)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, "/var/lib/tiles.db", cfg.LocalStore.Path)
		assert.False(t, cfg.LocalStore.Enabled)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty uses defaults", "", []string{"http://localhost:3000", "http://localhost:5173"}},
		{"wildcard allows all", "*", nil},
		{"list with whitespace", " https://shop.example.com , https://admin.example.com ,", []string{"https://shop.example.com", "https://admin.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCORSOrigins(tt.input))
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nLOG_LEVEL=warn\n"), 0o600))
	_ = os.Setenv("LOG_LEVEL", "error")

	require.NoError(t, LoadEnvFiles(path, filepath.Join(dir, "missing.env")))

	cfg := Load()
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level, "existing variables win over the file")
}
