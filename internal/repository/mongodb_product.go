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

// mongodbProductRepository implements ProductRepository using MongoDB
type mongodbProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new MongoDB-based product repository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongodbProductRepository{
		collection: db.Collection("products"),
	}
}

// Create inserts a new product
func (r *mongodbProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindAll returns every product in the catalog
func (r *mongodbProductRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]*model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// FindByID returns a single product
func (r *mongodbProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// FindByCategory returns the products in one category
func (r *mongodbProductRepository) FindByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]*model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Categories returns the distinct non-empty category values
func (r *mongodbProductRepository) Categories(ctx context.Context) ([]string, error) {
	filter := bson.M{"category": bson.M{"$nin": bson.A{nil, ""}}}
	values, err := r.collection.Distinct(ctx, "category", filter)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}

	return categories, nil
}

// Update replaces the mutable fields of a product
func (r *mongodbProductRepository) Update(ctx context.Context, id primitive.ObjectID, product *model.Product) error {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"price":       product.Price,
		"description": product.Description,
		"image":       product.Image,
		"category":    product.Category,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id
func (r *mongodbProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.ErrProductNotFound
	}

	return nil
}
