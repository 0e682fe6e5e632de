package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, product *model.Product) error

	// FindAll returns every product in the catalog
	FindAll(ctx context.Context) ([]*model.Product, error)

	// FindByID returns a single product
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)

	// FindByCategory returns the products in one category
	FindByCategory(ctx context.Context, category string) ([]*model.Product, error)

	// Categories returns the distinct non-empty category values
	Categories(ctx context.Context) ([]string, error)

	// Update replaces the mutable fields of a product
	Update(ctx context.Context, id primitive.ObjectID, product *model.Product) error

	// Delete removes a product by id
	Delete(ctx context.Context, id primitive.ObjectID) error
}
