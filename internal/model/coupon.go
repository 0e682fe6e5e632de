package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CouponProduct links a coupon to one applicable product
type CouponProduct struct {
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"` // Denormalized for display
}

// Coupon represents a discount code. An empty ApplicableProducts list means
// the coupon applies to every product.
type Coupon struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code               string             `bson:"code" json:"code"`
	DiscountAmount     float64            `bson:"discountAmount" json:"discountAmount"`
	ApplicableProducts []CouponProduct    `bson:"applicableProducts" json:"applicableProducts"`
	ExpiryDate         time.Time          `bson:"expiryDate" json:"expiryDate"`
	SelectedCategory   string             `bson:"selectedCategory,omitempty" json:"selectedCategory,omitempty"`
	MaxUsage           int                `bson:"maxUsage" json:"maxUsage"`
}

// ValidateCouponRequest represents the request to validate a coupon code
type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
