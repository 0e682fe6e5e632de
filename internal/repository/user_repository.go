package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
)

// UserRepository defines the interface for account data operations
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *model.User) error

	// FindAll returns every user
	FindAll(ctx context.Context) ([]*model.User, error)

	// Delete removes a user by id
	Delete(ctx context.Context, id primitive.ObjectID) error
}
