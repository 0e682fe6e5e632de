package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	// Create inserts a new coupon
	Create(ctx context.Context, coupon *model.Coupon) error

	// FindAll returns every coupon
	FindAll(ctx context.Context) ([]*model.Coupon, error)

	// FindByID returns a single coupon
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error)

	// FindByCode returns the coupon with the given code
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)

	// Update replaces the mutable fields of a coupon
	Update(ctx context.Context, id primitive.ObjectID, coupon *model.Coupon) error

	// Delete removes a coupon by id
	Delete(ctx context.Context, id primitive.ObjectID) error
}
