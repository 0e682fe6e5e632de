package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
	"shop-admin/pkg/errors"
)

type fakeOrderRepo struct {
	orders    map[primitive.ObjectID]*model.Order
	deleteErr error
	deletes   int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*model.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	orders := make([]*model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.orders[id]; !ok {
		return errors.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeFulfilledRepo struct {
	orders    []*model.FulfilledOrder
	createErr error
}

func (f *fakeFulfilledRepo) Create(ctx context.Context, order *model.FulfilledOrder) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = primitive.NewObjectID()
	order.FulfilledAt = time.Now()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeFulfilledRepo) FindAll(ctx context.Context) ([]*model.FulfilledOrder, error) {
	return f.orders, nil
}

func (f *fakeFulfilledRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return errors.ErrFulfilledOrderNotFound
}

func seedOrder(repo *fakeOrderRepo) *model.Order {
	order := &model.Order{
		ID:           primitive.NewObjectID(),
		Name:         "Ravi",
		Number:       "9876543210",
		Address:      "12 MG Road",
		Pincode:      "560001",
		State:        "Karnataka",
		Email:        "ravi@example.com",
		ProductID:    primitive.NewObjectID(),
		ProductName:  "Shirt",
		ProductImage: "https://cdn.example.com/shirt.jpg",
		TotalAmount:  20,
	}
	repo.orders[order.ID] = order
	return order
}

func requestFor(order *model.Order) *model.FulfillOrderRequest {
	return &model.FulfillOrderRequest{
		OrderID:     order.ID.Hex(),
		Name:        order.Name,
		Address:     order.Address,
		Pincode:     order.Pincode,
		State:       order.State,
		Email:       order.Email,
		TotalAmount: order.TotalAmount,
		Products: []model.OrderLine{{
			ProductID:    order.ProductID,
			ProductName:  order.ProductName,
			ProductImage: order.ProductImage,
		}},
	}
}

func TestFulfillMovesOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	fulfilled, err := svc.Fulfill(context.Background(), requestFor(order))
	if err != nil {
		t.Fatalf("Fulfill returned error: %v", err)
	}

	if len(orderRepo.orders) != 0 {
		t.Errorf("Expected order to be removed, %d orders remain", len(orderRepo.orders))
	}
	if len(fulfilledRepo.orders) != 1 {
		t.Fatalf("Expected 1 fulfilled order, got %d", len(fulfilledRepo.orders))
	}
	if len(fulfilled.Products) != 1 {
		t.Fatalf("Expected 1 product line, got %d", len(fulfilled.Products))
	}

	line := fulfilled.Products[0]
	if line.ProductID != order.ProductID {
		t.Errorf("Expected productId %s, got %s", order.ProductID.Hex(), line.ProductID.Hex())
	}
	if line.ProductName != order.ProductName {
		t.Errorf("Expected productName %q, got %q", order.ProductName, line.ProductName)
	}
	if line.ProductImage != order.ProductImage {
		t.Errorf("Expected productImage %q, got %q", order.ProductImage, line.ProductImage)
	}
	if line.Quantity != 1 {
		t.Errorf("Expected quantity to default to 1, got %d", line.Quantity)
	}
	if fulfilled.OrderID != order.ID {
		t.Errorf("Expected snapshot to record source order id %s, got %s", order.ID.Hex(), fulfilled.OrderID.Hex())
	}
}

func TestFulfillMissingFieldLeavesOrderUntouched(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	req := requestFor(order)
	req.Email = ""

	_, err := svc.Fulfill(context.Background(), req)
	if !stderrors.Is(err, errors.ErrFieldsRequired) {
		t.Fatalf("Expected ErrFieldsRequired, got %v", err)
	}

	if len(fulfilledRepo.orders) != 0 {
		t.Errorf("Expected no snapshot on rejected request, got %d", len(fulfilledRepo.orders))
	}
	if len(orderRepo.orders) != 1 {
		t.Errorf("Expected order store unchanged, %d orders remain", len(orderRepo.orders))
	}
	if orderRepo.deletes != 0 {
		t.Errorf("Expected no delete attempts, got %d", orderRepo.deletes)
	}
}

func TestFulfillEmptyProductsRejected(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	req := requestFor(order)
	req.Products = nil

	if _, err := svc.Fulfill(context.Background(), req); !stderrors.Is(err, errors.ErrFieldsRequired) {
		t.Fatalf("Expected ErrFieldsRequired, got %v", err)
	}
	if len(orderRepo.orders) != 1 {
		t.Errorf("Expected order store unchanged, %d orders remain", len(orderRepo.orders))
	}
}

func TestFulfillMalformedOrderIDRejected(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	req := requestFor(order)
	req.OrderID = "not-a-hex-id"

	if _, err := svc.Fulfill(context.Background(), req); !stderrors.Is(err, errors.ErrInvalidID) {
		t.Fatalf("Expected ErrInvalidID, got %v", err)
	}
	if len(fulfilledRepo.orders) != 0 {
		t.Errorf("Expected no snapshot for malformed order id, got %d", len(fulfilledRepo.orders))
	}
}

func TestFulfillWithoutOrderIDOnlySnapshots(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	req := requestFor(order)
	req.OrderID = ""

	fulfilled, err := svc.Fulfill(context.Background(), req)
	if err != nil {
		t.Fatalf("Fulfill returned error: %v", err)
	}

	if len(orderRepo.orders) != 1 {
		t.Errorf("Expected pending order to remain, %d orders left", len(orderRepo.orders))
	}
	if orderRepo.deletes != 0 {
		t.Errorf("Expected no delete attempts, got %d", orderRepo.deletes)
	}
	if !fulfilled.OrderID.IsZero() {
		t.Errorf("Expected no source order id on snapshot, got %s", fulfilled.OrderID.Hex())
	}
}

// A removal failure after the snapshot insert leaves the order in both
// collections, and retrying creates a second snapshot. That is the known
// partial-failure mode of the copy+delete transition; this test pins the
// current behavior so a change to it is a deliberate decision.
func TestFulfillRemovalFailureDuplicatesSnapshot(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)
	orderRepo.deleteErr = stderrors.New("connection reset")

	req := requestFor(order)

	if _, err := svc.Fulfill(context.Background(), req); err == nil {
		t.Fatal("Expected error when removal fails")
	}
	if _, err := svc.Fulfill(context.Background(), req); err == nil {
		t.Fatal("Expected error when removal fails")
	}

	if len(fulfilledRepo.orders) != 2 {
		t.Errorf("Expected 2 snapshots after retrying a failed removal, got %d", len(fulfilledRepo.orders))
	}
	if len(orderRepo.orders) != 1 {
		t.Errorf("Expected pending order to survive failed removals, %d orders left", len(orderRepo.orders))
	}
}

func TestFulfillKeepsExplicitQuantity(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	fulfilledRepo := &fakeFulfilledRepo{}
	svc := NewFulfillmentService(orderRepo, fulfilledRepo)

	order := seedOrder(orderRepo)

	req := requestFor(order)
	req.Products[0].Quantity = 3

	fulfilled, err := svc.Fulfill(context.Background(), req)
	if err != nil {
		t.Fatalf("Fulfill returned error: %v", err)
	}
	if fulfilled.Products[0].Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", fulfilled.Products[0].Quantity)
	}
}
