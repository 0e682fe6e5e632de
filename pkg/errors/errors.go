package errors

import "errors"

// Domain errors for the admin backend
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrFulfilledOrderNotFound = errors.New("fulfilled order not found")
	ErrCouponNotFound         = errors.New("coupon not found")
	ErrUserNotFound           = errors.New("user not found")

	ErrCouponCodeExists = errors.New("coupon code already exists")
	ErrCouponExpired    = errors.New("coupon has expired")
	ErrExpiryNotFuture  = errors.New("expiry date must be in the future")
	ErrNegativeDiscount = errors.New("discount amount cannot be negative")

	ErrInvalidID      = errors.New("invalid id")
	ErrFieldsRequired = errors.New("all fields are required")
)
