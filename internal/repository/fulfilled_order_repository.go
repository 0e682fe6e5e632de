package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
)

// FulfilledOrderRepository defines the interface for the fulfilled-order archive
type FulfilledOrderRepository interface {
	// Create inserts a new fulfilled order snapshot
	Create(ctx context.Context, order *model.FulfilledOrder) error

	// FindAll returns every fulfilled order, newest first
	FindAll(ctx context.Context) ([]*model.FulfilledOrder, error)

	// Delete removes a fulfilled order by id
	Delete(ctx context.Context, id primitive.ObjectID) error
}
