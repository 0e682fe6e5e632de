package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shop-admin/internal/model"
	"shop-admin/pkg/errors"
)

// mongodbOrderRepository implements OrderRepository using MongoDB
type mongodbOrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new MongoDB-based order repository
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongodbOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create inserts a new pending order
func (r *mongodbOrderRepository) Create(ctx context.Context, order *model.Order) error {
	order.ID = primitive.NewObjectID()
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindAll returns every pending order
func (r *mongodbOrderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]*model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Delete removes a pending order by id
func (r *mongodbOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrOrderNotFound
	}

	return nil
}
