package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// DefaultCustomerListLimit caps List when the caller passes no limit.
const DefaultCustomerListLimit = 100

// CustomerRepository stores customers in the customers collection.
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *MongoDB) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Customers,
	}
}

// Create inserts a customer document.
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	prepareCustomer(customer)

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID returns the customer with the given hex id.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	oid, err := parseCustomerID(id)
	if err != nil {
		return nil, err
	}

	var customer model.Customer
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}

// List returns customers newest first.
func (r *CustomerRepository) List(ctx context.Context, limit int) ([]model.Customer, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(normalizeLimit(limit)))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	customers := make([]model.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

func prepareCustomer(customer *model.Customer) {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	if customer.Rooms == nil {
		customer.Rooms = []model.CustomerRoom{}
	}
}

func parseCustomerID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidCustomerID, id)
	}
	return oid, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultCustomerListLimit {
		return DefaultCustomerListLimit
	}
	return limit
}
