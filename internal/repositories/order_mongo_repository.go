package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partsstore/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderCollection is the document collection orders are written to.
const OrderCollection = "orders"

// MongoOrderRepository stores each order as a single document, items embedded.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{
		coll: coll,
	}
}

// bsonNow returns the current UTC time at the millisecond precision of BSON dates,
// rounded up so it is never earlier than the moment of the call.
func bsonNow() time.Time {
	now := time.Now().UTC()
	ts := now.Truncate(time.Millisecond)
	if ts.Before(now) {
		ts = ts.Add(time.Millisecond)
	}
	return ts
}

// Create inserts the order document.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.ID = uuid.New().String()
	order.CreatedAt = bsonNow()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order document.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}
