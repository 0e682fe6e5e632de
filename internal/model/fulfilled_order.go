package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLine is one product line on a fulfilled order. Pending orders carry a
// single product, but the fulfilled shape allows several lines.
type OrderLine struct {
	ProductID    primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductImage string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Quantity     int                `bson:"quantity" json:"quantity"`
}

// FulfilledOrder is the archived snapshot of a completed order. OrderID is a
// soft pointer back to the pending order it was copied from, kept so a
// duplicated order left behind by a failed removal can be found by hand.
type FulfilledOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID     primitive.ObjectID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	Pincode     string             `bson:"pincode" json:"pincode"`
	State       string             `bson:"state" json:"state"`
	Email       string             `bson:"email" json:"email"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Products    []OrderLine        `bson:"products" json:"products"`
	FulfilledAt time.Time          `bson:"fulfilledAt" json:"fulfilledAt"`
}

// FulfillOrderRequest is the payload accepted by POST /api/fulfill. OrderID is
// optional: when present the pending order is deleted after the snapshot is
// written, when absent only the snapshot is created.
type FulfillOrderRequest struct {
	OrderID     string      `json:"orderId"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Pincode     string      `json:"pincode"`
	State       string      `json:"state"`
	Email       string      `json:"email"`
	TotalAmount float64     `json:"totalAmount"`
	Products    []OrderLine `json:"products"`
}
