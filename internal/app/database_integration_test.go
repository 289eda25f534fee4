//go:build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/testutil"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uri := testutil.GetSharedContainerURI()

	t.Run("mongodb enabled", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(mongoConfig(t, uri))
		defer func() { _ = components.Close(ctx) }()

		assert.Equal(t, StoreMongoDB, components.Store)
		assert.NotNil(t, components.CustomerRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CustomersCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		require.Contains(t, components.HealthChecks, StoreMongoDB)
		assert.NoError(t, components.HealthChecks[StoreMongoDB](ctx))
	})

	t.Run("customer round trip through circuit breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(mongoConfig(t, uri))
		defer func() { _ = components.Close(ctx) }()

		customer := testutil.Customer()
		require.NoError(t, components.CustomerRepo.Create(ctx, customer))

		got, err := components.CustomerRepo.GetByID(ctx, customer.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, customer.Phone, got.Phone)

		// Not found is a business outcome and must not trip the breaker.
		for range 10 {
			_, err := components.CustomerRepo.GetByID(ctx, "000000000000000000000000")
			require.Error(t, err)
		}
		assert.False(t, components.CustomersCircuitBreaker.IsOpen())
	})

	t.Run("request logs are queryable", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(mongoConfig(t, uri))
		defer func() { _ = components.Close(ctx) }()

		require.NoError(t, components.LoggingService.CreateLog(ctx, &model.LogEntry{
			Level:      "info",
			Message:    "estimate saved",
			RequestID:  "req-app-1",
			ActionType: model.ActionSaveEstimate,
		}))

		count, err := components.LoggingService.CountLogs(ctx, model.LogQueryOptions{RequestID: "req-app-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unreachable mongodb falls back to sqlite", func(t *testing.T) {
		t.Parallel()
		cfg := mongoConfig(t, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500&connectTimeoutMS=500")
		components := InitializeDatabase(cfg)
		defer func() { _ = components.Close(ctx) }()

		assert.Equal(t, StoreSQLite, components.Store)
		assert.NotNil(t, components.CustomerRepo)
		assert.Nil(t, components.LoggingService)
	})
}
