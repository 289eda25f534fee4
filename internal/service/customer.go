package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/logger"
	"github.com/tileworks/tile-estimator/internal/metrics"
	"github.com/tileworks/tile-estimator/internal/repository"
)

// ErrRepositoryNotConfigured is returned when no customer store was wired.
var ErrRepositoryNotConfigured = errors.New("customer repository not configured")

// CustomerService persists finished estimates against customer details.
type CustomerService interface {
	Save(ctx context.Context, customer *model.Customer) error
	Get(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, limit int) ([]model.Customer, error)
	Store() string
}

// CustomerServiceImpl implements CustomerService over a customer repository.
type CustomerServiceImpl struct {
	repo  repository.CustomerRepositoryInterface
	store string
	log   zerolog.Logger
}

// NewCustomerService creates a customer service. store names the backend in
// metrics and health output ("mongodb" or "sqlite"). A nil repo is allowed;
// every call then fails with ErrRepositoryNotConfigured.
func NewCustomerService(repo repository.CustomerRepositoryInterface, store string) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		repo:  repo,
		store: store,
		log:   logger.Component("customer_service"),
	}
}

// Save stores customer. The estimate inside it is never modified.
func (s *CustomerServiceImpl) Save(ctx context.Context, customer *model.Customer) error {
	if s.repo == nil {
		metrics.RecordCustomerSave(s.store, "unavailable")
		return ErrRepositoryNotConfigured
	}
	if customer == nil {
		return fmt.Errorf("%w: nil customer", ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		metrics.RecordCustomerSave(s.store, "error")
		s.log.Error().Err(err).Str("store", s.store).Msg("failed to save customer")
		return fmt.Errorf("save customer: %w", err)
	}

	metrics.RecordCustomerSave(s.store, "success")
	s.log.Info().
		Str("customer_id", customer.ID.Hex()).
		Str("store", s.store).
		Int("rooms", len(customer.Rooms)).
		Float64("total_amount", customer.TotalAmount).
		Msg("customer saved")
	return nil
}

// Get returns one saved customer.
func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (*model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetByID(ctx, id)
}

// List returns saved customers, newest first.
func (s *CustomerServiceImpl) List(ctx context.Context, limit int) ([]model.Customer, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

// Store returns the backend name.
func (s *CustomerServiceImpl) Store() string {
	return s.store
}
