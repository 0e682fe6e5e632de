package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shop-admin/internal/model"
	"shop-admin/pkg/errors"
)

// mongodbCouponRepository implements CouponRepository using MongoDB
type mongodbCouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new MongoDB-based coupon repository
func NewCouponRepository(db *mongo.Database) CouponRepository {
	return &mongodbCouponRepository{
		collection: db.Collection("coupons"),
	}
}

// Create inserts a new coupon. The unique index on code turns duplicate
// inserts into ErrCouponCodeExists.
func (r *mongodbCouponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	coupon.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrCouponCodeExists
		}
		return err
	}

	return nil
}

// FindAll returns every coupon
func (r *mongodbCouponRepository) FindAll(ctx context.Context) ([]*model.Coupon, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	coupons := make([]*model.Coupon, 0)
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

// FindByID returns a single coupon
func (r *mongodbCouponRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

// FindByCode returns the coupon with the given code
func (r *mongodbCouponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

// Update replaces the mutable fields of a coupon
func (r *mongodbCouponRepository) Update(ctx context.Context, id primitive.ObjectID, coupon *model.Coupon) error {
	update := bson.M{"$set": bson.M{
		"code":               coupon.Code,
		"discountAmount":     coupon.DiscountAmount,
		"applicableProducts": coupon.ApplicableProducts,
		"expiryDate":         coupon.ExpiryDate,
		"selectedCategory":   coupon.SelectedCategory,
		"maxUsage":           coupon.MaxUsage,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.ErrCouponCodeExists
		}
		return err
	}
	if result.MatchedCount == 0 {
		return errors.ErrCouponNotFound
	}

	return nil
}

// Delete removes a coupon by id
func (r *mongodbCouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrCouponNotFound
	}

	return nil
}
