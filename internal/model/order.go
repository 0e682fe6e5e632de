package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a pending customer order. It references exactly one product;
// the product id is a soft pointer and may dangle after catalog deletes.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Number       string             `bson:"number" json:"number"`
	Address      string             `bson:"address" json:"address"`
	Pincode      string             `bson:"pincode" json:"pincode"`
	State        string             `bson:"state" json:"state"`
	Email        string             `bson:"email" json:"email"`
	ProductID    primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductImage string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	COD          bool               `bson:"cod" json:"cod"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
