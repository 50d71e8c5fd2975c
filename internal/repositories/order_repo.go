package repositories

import (
	"context"

	"partsstore/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are write-once: there is no update or delete.
type OrderRepository interface {
	// Create assigns the order an ID and creation time and stores it.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
}
