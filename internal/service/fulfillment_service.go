package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
	"shop-admin/internal/repository"
	"shop-admin/pkg/errors"
)

// FulfillmentService moves pending orders into the fulfilled-order archive.
//
// The move is two sequential writes against independent collections with no
// transaction between them: insert the snapshot, then delete the pending
// order. A failure after the insert leaves the order in both collections.
// That duplicated state is not reconciled automatically; the snapshot keeps
// the source order id so it can be resolved by hand. Two concurrent
// fulfillments of the same order can likewise both pass the insert before
// either delete runs and leave two snapshots behind.
type FulfillmentService struct {
	orderRepo     repository.OrderRepository
	fulfilledRepo repository.FulfilledOrderRepository
}

// NewFulfillmentService creates a new fulfillment service
func NewFulfillmentService(orderRepo repository.OrderRepository, fulfilledRepo repository.FulfilledOrderRepository) *FulfillmentService {
	return &FulfillmentService{
		orderRepo:     orderRepo,
		fulfilledRepo: fulfilledRepo,
	}
}

// Fulfill archives an order snapshot and, when the request names a source
// order, deletes that order afterwards. Validation failures happen before
// any write; a delete failure is returned with the snapshot already saved.
func (s *FulfillmentService) Fulfill(ctx context.Context, req *model.FulfillOrderRequest) (*model.FulfilledOrder, error) {
	if err := validateFulfillRequest(req); err != nil {
		return nil, err
	}

	var orderID primitive.ObjectID
	if req.OrderID != "" {
		var err error
		orderID, err = primitive.ObjectIDFromHex(req.OrderID)
		if err != nil {
			return nil, errors.ErrInvalidID
		}
	}

	lines := make([]model.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		if p.Quantity <= 0 {
			p.Quantity = 1
		}
		lines = append(lines, p)
	}

	fulfilled := &model.FulfilledOrder{
		OrderID:     orderID,
		Name:        req.Name,
		Address:     req.Address,
		Pincode:     req.Pincode,
		State:       req.State,
		Email:       req.Email,
		TotalAmount: req.TotalAmount,
		Products:    lines,
	}

	if err := s.fulfilledRepo.Create(ctx, fulfilled); err != nil {
		return nil, err
	}

	if !orderID.IsZero() {
		if err := s.orderRepo.Delete(ctx, orderID); err != nil {
			// The snapshot is already persisted; the order now exists in
			// both collections until someone cleans it up.
			return fulfilled, fmt.Errorf("order %s fulfilled but not removed: %w", req.OrderID, err)
		}
	}

	return fulfilled, nil
}

func validateFulfillRequest(req *model.FulfillOrderRequest) error {
	if req.Name == "" || req.Address == "" || req.Pincode == "" ||
		req.State == "" || req.Email == "" || req.TotalAmount == 0 ||
		len(req.Products) == 0 {
		return errors.ErrFieldsRequired
	}
	return nil
}
