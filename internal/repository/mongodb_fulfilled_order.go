package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop-admin/internal/model"
	"shop-admin/pkg/errors"
)

// mongodbFulfilledOrderRepository implements FulfilledOrderRepository using MongoDB
type mongodbFulfilledOrderRepository struct {
	collection *mongo.Collection
}

// NewFulfilledOrderRepository creates a new MongoDB-based fulfilled-order repository
func NewFulfilledOrderRepository(db *mongo.Database) FulfilledOrderRepository {
	return &mongodbFulfilledOrderRepository{
		collection: db.Collection("fulfilledorders"),
	}
}

// Create inserts a new fulfilled order snapshot
func (r *mongodbFulfilledOrderRepository) Create(ctx context.Context, order *model.FulfilledOrder) error {
	order.ID = primitive.NewObjectID()
	order.FulfilledAt = time.Now()

	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindAll returns every fulfilled order, newest first
func (r *mongodbFulfilledOrderRepository) FindAll(ctx context.Context) ([]*model.FulfilledOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fulfilledAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]*model.FulfilledOrder, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Delete removes a fulfilled order by id
func (r *mongodbFulfilledOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrFulfilledOrderNotFound
	}

	return nil
}
