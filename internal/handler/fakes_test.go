package handler

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-admin/internal/model"
	"shop-admin/internal/service"
	"shop-admin/pkg/errors"
)

// In-memory repository fakes. Each counts id-addressed store calls so tests
// can assert that malformed ids never reach the store.

type fakeProductRepo struct {
	products []*model.Product
	idCalls  int
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*model.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	f.idCalls++
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	matches := make([]*model.Product, 0)
	for _, p := range f.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range f.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, p *model.Product) error {
	f.idCalls++
	for i, existing := range f.products {
		if existing.ID == id {
			p.ID = id
			p.CreatedAt = existing.CreatedAt
			f.products[i] = p
			return nil
		}
	}
	return errors.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.idCalls++
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errors.ErrProductNotFound
}

type fakeOrderRepo struct {
	orders  []*model.Order
	idCalls int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error {
	o.ID = primitive.NewObjectID()
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.idCalls++
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return errors.ErrOrderNotFound
}

type fakeFulfilledRepo struct {
	orders  []*model.FulfilledOrder
	idCalls int
}

func (f *fakeFulfilledRepo) Create(ctx context.Context, o *model.FulfilledOrder) error {
	o.ID = primitive.NewObjectID()
	o.FulfilledAt = time.Now()
	// Newest first, matching the store's sort
	f.orders = append([]*model.FulfilledOrder{o}, f.orders...)
	return nil
}

func (f *fakeFulfilledRepo) FindAll(ctx context.Context) ([]*model.FulfilledOrder, error) {
	return f.orders, nil
}

func (f *fakeFulfilledRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.idCalls++
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return errors.ErrFulfilledOrderNotFound
}

type fakeCouponRepo struct {
	coupons []*model.Coupon
	idCalls int
}

func (f *fakeCouponRepo) Create(ctx context.Context, c *model.Coupon) error {
	for _, existing := range f.coupons {
		if existing.Code == c.Code {
			return errors.ErrCouponCodeExists
		}
	}
	c.ID = primitive.NewObjectID()
	f.coupons = append(f.coupons, c)
	return nil
}

func (f *fakeCouponRepo) FindAll(ctx context.Context) ([]*model.Coupon, error) {
	return f.coupons, nil
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	f.idCalls++
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.ErrCouponNotFound
}

func (f *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, errors.ErrCouponNotFound
}

func (f *fakeCouponRepo) Update(ctx context.Context, id primitive.ObjectID, c *model.Coupon) error {
	f.idCalls++
	for i, existing := range f.coupons {
		if existing.ID == id {
			c.ID = id
			f.coupons[i] = c
			return nil
		}
	}
	return errors.ErrCouponNotFound
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.idCalls++
	for i, c := range f.coupons {
		if c.ID == id {
			f.coupons = append(f.coupons[:i], f.coupons[i+1:]...)
			return nil
		}
	}
	return errors.ErrCouponNotFound
}

type fakeUserRepo struct {
	users   []*model.User
	idCalls int
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.idCalls++
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return errors.ErrUserNotFound
}

type testEnv struct {
	products  *fakeProductRepo
	orders    *fakeOrderRepo
	fulfilled *fakeFulfilledRepo
	coupons   *fakeCouponRepo
	users     *fakeUserRepo
}

func newTestDeps() (Deps, *testEnv) {
	env := &testEnv{
		products:  &fakeProductRepo{},
		orders:    &fakeOrderRepo{},
		fulfilled: &fakeFulfilledRepo{},
		coupons:   &fakeCouponRepo{},
		users:     &fakeUserRepo{},
	}
	deps := Deps{
		Products:    env.products,
		Orders:      env.orders,
		Users:       env.users,
		Coupons:     env.coupons,
		Fulfilled:   env.fulfilled,
		CouponSvc:   service.NewCouponService(env.coupons),
		Fulfillment: service.NewFulfillmentService(env.orders, env.fulfilled),
	}
	return deps, env
}
