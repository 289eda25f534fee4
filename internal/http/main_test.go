//go:build integration

package http

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tileworks/tile-estimator/internal/repository"
	"github.com/tileworks/tile-estimator/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container with a database unique to the
// test and drops it on cleanup.
func setupTestDB(t *testing.T) *repository.MongoDB {
	t.Helper()
	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}
