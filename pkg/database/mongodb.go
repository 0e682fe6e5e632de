package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(uri)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
	}

	if err := mongoDB.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	// Unique index on coupons.code so duplicate codes are rejected by the store
	couponsCollection := m.Database.Collection("coupons")
	couponCodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("coupon_code_unique"),
	}
	if _, err := couponsCollection.Indexes().CreateOne(ctx, couponCodeIndex); err != nil {
		return fmt.Errorf("failed to create coupon code index: %w", err)
	}

	// Fulfilled orders are always listed newest first
	fulfilledCollection := m.Database.Collection("fulfilledorders")
	fulfilledAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "fulfilledAt", Value: -1}},
		Options: options.Index().SetName("fulfilled_at_desc"),
	}
	if _, err := fulfilledCollection.Indexes().CreateOne(ctx, fulfilledAtIndex); err != nil {
		return fmt.Errorf("failed to create fulfilledAt index: %w", err)
	}

	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
