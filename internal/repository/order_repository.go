package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
)

// OrderRepository defines the interface for pending-order data operations
type OrderRepository interface {
	// Create inserts a new pending order
	Create(ctx context.Context, order *model.Order) error

	// FindAll returns every pending order
	FindAll(ctx context.Context) ([]*model.Order, error)

	// Delete removes a pending order by id
	Delete(ctx context.Context, id primitive.ObjectID) error
}
