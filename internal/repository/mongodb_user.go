package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shop-admin/internal/model"
	"shop-admin/pkg/errors"
)

// mongodbUserRepository implements UserRepository using MongoDB
type mongodbUserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new MongoDB-based user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongodbUserRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user
func (r *mongodbUserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// FindAll returns every user
func (r *mongodbUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]*model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// Delete removes a user by id
func (r *mongodbUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}
