// Package app provides database initialization and setup.
package app

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/circuitbreaker"
	"github.com/tileworks/tile-estimator/internal/repository"
	"github.com/tileworks/tile-estimator/internal/service"
)

// Store names reported in metrics, health output and save messages.
const (
	StoreMongoDB = "mongodb"
	StoreSQLite  = "sqlite"
)

const databaseInitTimeout = 10 * time.Second

// DatabaseComponents holds database-related components. Every field may be
// nil when no store could be opened; estimates still work without one.
type DatabaseComponents struct {
	Store                   string
	CustomerRepo            repository.CustomerRepositoryInterface
	LoggingService          service.LoggingService
	CustomersCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
	// HealthChecks are probed by /readyz.
	HealthChecks map[string]func(context.Context) error

	closers []func(context.Context) error
}

// Close releases every opened store.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

// InitializeDatabase opens MongoDB when enabled and falls back to the local
// SQLite store when MongoDB is disabled or unreachable.
func InitializeDatabase(cfg config.Config) *DatabaseComponents {
	components := &DatabaseComponents{HealthChecks: make(map[string]func(context.Context) error)}

	if cfg.Database.Enabled {
		if initializeMongo(cfg.Database, components) {
			return components
		}
	}

	if cfg.LocalStore.Enabled {
		initializeLocalStore(cfg.LocalStore, components)
	} else {
		log.Warn().Msg("No customer store configured - estimates cannot be saved")
	}
	return components
}

func initializeMongo(cfg config.DatabaseConfig, components *DatabaseComponents) bool {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - falling back to local store")
		return false
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), databaseInitTimeout)
	defer cancel()

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	customersCB := newCircuitBreaker(cfg, "mongodb-customers")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	customerRepo := repository.NewCustomerRepositoryWithCircuitBreaker(repository.NewCustomerRepository(db), customersCB)

	components.Store = StoreMongoDB
	components.CustomerRepo = customerRepo
	components.LoggingService = service.NewLoggingService(logsRepo)
	components.CustomersCircuitBreaker = customersCB
	components.LogsCircuitBreaker = logsCB
	components.HealthChecks[StoreMongoDB] = db.HealthCheck
	components.closers = append(components.closers, db.Close)
	return true
}

func initializeLocalStore(cfg config.LocalStoreConfig, components *DatabaseComponents) {
	ctx, cancel := context.WithTimeout(context.Background(), databaseInitTimeout)
	defer cancel()

	db, err := openLocalStore(ctx, cfg.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Path).Msg("Failed to open local store - estimates cannot be saved")
		return
	}

	log.Info().Str("path", cfg.Path).Msg("Using local SQLite customer store")

	components.Store = StoreSQLite
	components.CustomerRepo = repository.NewSQLiteCustomerRepository(db)
	components.HealthChecks[StoreSQLite] = db.PingContext
	components.closers = append(components.closers, func(context.Context) error {
		return db.Close()
	})
}

func openLocalStore(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}
	return repository.OpenSQLite(ctx, path)
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsInfrastructureFailure,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().
				Str("circuit_breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}
