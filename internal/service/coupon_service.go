package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/pkg/errors"
)

// CouponService handles business logic for coupons
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
	}
}

// Create validates and stores a new coupon. MaxUsage defaults to 1.
func (s *CouponService) Create(ctx context.Context, coupon *model.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	if coupon.MaxUsage == 0 {
		coupon.MaxUsage = 1
	}
	if coupon.ApplicableProducts == nil {
		coupon.ApplicableProducts = []model.CouponProduct{}
	}

	return s.couponRepo.Create(ctx, coupon)
}

// Update re-validates and replaces an existing coupon
func (s *CouponService) Update(ctx context.Context, id primitive.ObjectID, coupon *model.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	if coupon.MaxUsage == 0 {
		coupon.MaxUsage = 1
	}

	return s.couponRepo.Update(ctx, id, coupon)
}

// Validate looks up a coupon by code and checks that it has not expired.
// The discount amount plays no part in validity.
func (s *CouponService) Validate(ctx context.Context, code string) (*model.Coupon, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if coupon.ExpiryDate.Before(time.Now()) {
		return nil, errors.ErrCouponExpired
	}

	return coupon, nil
}

func validateCoupon(coupon *model.Coupon) error {
	if coupon.DiscountAmount < 0 {
		return errors.ErrNegativeDiscount
	}
	if !coupon.ExpiryDate.After(time.Now()) {
		return errors.ErrExpiryNotFuture
	}
	return nil
}
