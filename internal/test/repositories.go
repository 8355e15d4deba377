package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[uuid.UUID]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
	}
}

// Add registers user into both lookup maps.
func (s *UserRepositoryStub) Add(user *model.User) {
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub serves catalog lookups from a map.
type ProductRepositoryStub struct {
	Products map[uuid.UUID]*model.Product
	Err      error
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddressRepositoryStub serves address lookups from a map.
type AddressRepositoryStub struct {
	Addresses map[uuid.UUID]*model.Address
	Err       error
}

// GetByID fetches address by identifier or returns not found.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if address, ok := s.Addresses[id]; ok {
		return address, nil
	}
	return nil, domainErrors.ErrNotFound
}

// StockRepositoryStub tracks quantities in-memory with reservation semantics.
type StockRepositoryStub struct {
	Stocks map[uuid.UUID]int
	Err    error
}

// GetByID returns current quantity or not found.
func (s *StockRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Stock, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	qty, ok := s.Stocks[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Stock{ID: id, Quantity: qty}, nil
}

// Reduce performs a guarded decrement mirroring the storage contract.
func (s *StockRepositoryStub) Reduce(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	qty, ok := s.Stocks[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if qty < quantity {
		return nil, domainErrors.ErrInsufficientStock
	}
	s.Stocks[id] = qty - quantity
	return &model.Stock{ID: id, Quantity: qty - quantity}, nil
}

// Set overwrites the stored quantity.
func (s *StockRepositoryStub) Set(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Stocks[id]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Stocks[id] = quantity
	return &model.Stock{ID: id, Quantity: quantity}, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, uuid.UUID) (*model.Order, error)
	ListByUserFn   func(context.Context, uuid.UUID) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	TransitionFn   func(context.Context, uuid.UUID, model.OrderStatus, bool) (*model.Order, error)
	DeleteFn       func(context.Context, uuid.UUID) (*model.Order, error)
	StalePendingFn func(context.Context, time.Time, int) ([]model.Order, error)

	Orders []model.Order
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// Transition applies the status guard used by the real repository.
func (s *OrderRepositoryStub) Transition(ctx context.Context, id uuid.UUID, to model.OrderStatus, restock bool) (*model.Order, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, id, to, restock)
	}
	for i, o := range s.Orders {
		if o.ID != id {
			continue
		}
		if o.Status != model.OrderStatusPending {
			return nil, domainErrors.ErrOrderNotPending
		}
		s.Orders[i].Status = to
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes order from the slice.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, o := range s.Orders {
		if o.ID == id {
			order := o
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListStalePending filters pending orders older than the cutoff.
func (s *OrderRepositoryStub) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.StalePendingFn != nil {
		return s.StalePendingFn(ctx, olderThan, limit)
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending && o.CreatedAt.Before(olderThan) {
			result = append(result, o)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}
