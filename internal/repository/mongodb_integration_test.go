//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tileworks/tile-estimator/internal/circuitbreaker"
	"github.com/tileworks/tile-estimator/internal/testutil"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("customer indexes", func(t *testing.T) {
		cursor, err := db.Customers.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "createdAt_-1")
		assert.Contains(t, names, "phone_1")
	})

	t.Run("set logs TTL twice", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		require.NoError(t, db.SetLogsTTL(ctx, 60))
	})
}

func TestCustomerRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCustomerRepository(setupTestDB(t))

	older := testutil.Customer()
	older.FullName = "Older"
	older.CreatedAt = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, older))

	newer := testutil.Customer()
	newer.FullName = "Newer"
	require.NoError(t, repo.Create(ctx, newer))
	require.False(t, newer.ID.IsZero())

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, newer.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Newer", got.FullName)
		assert.Equal(t, newer.Rooms, got.Rooms)
		assert.Equal(t, newer.TotalAmount, got.TotalAmount)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("get malformed id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "42")
		assert.ErrorIs(t, err, ErrInvalidCustomerID)
	})

	t.Run("list newest first", func(t *testing.T) {
		got, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Newer", got[0].FullName)
		assert.Equal(t, "Older", got[1].FullName)
	})

	t.Run("stored document keeps field names", func(t *testing.T) {
		var raw bson.M
		require.NoError(t, repo.collection.FindOne(ctx, bson.M{"_id": older.ID}).Decode(&raw))
		for _, key := range []string{"fullname", "phone", "address", "attender", "attenderPhone",
			"totalAmount", "totalArea", "totalWeight", "loadingCharges", "totalTileCost", "rooms", "createdAt"} {
			assert.Contains(t, raw, key)
		}
	})
}

func TestCustomerRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb-customers",
		IsFailure:        IsInfrastructureFailure,
	})
	repo := NewCustomerRepositoryWithCircuitBreaker(NewCustomerRepository(setupTestDB(t)), cb)

	require.NoError(t, repo.Create(ctx, testutil.Customer()))

	for i := 0; i < 3; i++ {
		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30))

	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))

	require.NoError(t, repo.Create(ctx, &LogEntryDocument{
		Level:      "info",
		Message:    "estimate saved",
		RequestID:  "req-1",
		ActionType: "save_estimate",
		CustomerID: "abc",
	}))
	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
		{Level: "info", Message: "estimate calculated", RequestID: "req-2", ActionType: "calculate_estimate"},
		{Level: "error", Message: "save failed", RequestID: "req-3", ActionType: "save_estimate"},
	}))

	t.Run("query by action", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "save_estimate"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("query by request id", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "abc", entries[0].CustomerID)
		assert.False(t, entries[0].Timestamp.IsZero())
	})

	t.Run("query by customer", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{CustomerID: "abc"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-1", entries[0].RequestID)
	})

	t.Run("count by level", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
