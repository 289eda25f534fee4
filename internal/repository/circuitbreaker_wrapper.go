package repository

import (
	"context"
	"errors"

	"github.com/tileworks/tile-estimator/internal/circuitbreaker"
	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// IsInfrastructureFailure reports whether err should count against a store's
// circuit breaker. Lookups that simply find nothing do not.
func IsInfrastructureFailure(err error) bool {
	return !errors.Is(err, ErrCustomerNotFound) && !errors.Is(err, ErrInvalidCustomerID)
}

// CustomerRepositoryWithCircuitBreaker wraps a customer store with circuit
// breaker protection.
type CustomerRepositoryWithCircuitBreaker struct {
	repo           CustomerRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCustomerRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewCustomerRepositoryWithCircuitBreaker(repo CustomerRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CustomerRepositoryWithCircuitBreaker {
	return &CustomerRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a customer. An open circuit returns circuitbreaker.ErrCircuitOpen.
func (r *CustomerRepositoryWithCircuitBreaker) Create(ctx context.Context, customer *model.Customer) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, customer)
	})
}

// GetByID loads one customer.
func (r *CustomerRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var result *model.Customer
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns customers newest first.
func (r *CustomerRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Customer, error) {
	var result []model.Customer
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CustomerRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Writes are dropped while the circuit is open; audit logging
// must never fail a request.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores several log entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the number of matching log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
