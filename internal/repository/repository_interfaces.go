package repository

import (
	"context"
	"errors"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

var (
	// ErrCustomerNotFound is returned when no customer has the requested id.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidCustomerID is returned for ids that are not 24-char hex object ids.
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// CustomerRepositoryInterface stores customer estimates. Create assigns the
// id and creation time when they are zero.
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, limit int) ([]model.Customer, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
