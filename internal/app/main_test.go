//go:build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// mongoConfig points the app at uri with a database named after the test
// and a SQLite fallback in a temp dir.
func mongoConfig(t *testing.T, uri string) config.Config {
	t.Helper()
	return config.Config{
		Database: config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		LocalStore: config.LocalStoreConfig{
			Path:    filepath.Join(t.TempDir(), "customers.db"),
			Enabled: true,
		},
	}
}
