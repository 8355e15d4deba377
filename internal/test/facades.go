package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftpine/storefront/internal/domain/model"
)

// SampleOrder builds an order with stable field values for assertions.
func SampleOrder(status model.OrderStatus) model.Order {
	return model.Order{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		UserID:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ProductID: uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		AddressID: uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		Quantity:  2,
		Total:     decimal.RequireFromString("19.98"),
		Status:    status,
		CreatedAt: time.Unix(0, 0).UTC(),
		UpdatedAt: time.Unix(0, 0).UTC(),
	}
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn   func(context.Context, uuid.UUID, string, string, int) (*model.Order, error)
	OrderFn    func(context.Context, uuid.UUID, model.Role, string) (*model.Order, error)
	OrdersFn   func(context.Context, uuid.UUID) ([]model.Order, error)
	AllFn      func(context.Context) ([]model.Order, error)
	CompleteFn func(context.Context, string) (*model.Order, error)
	CancelFn   func(context.Context, string) (*model.Order, error)
	DeleteFn   func(context.Context, uuid.UUID, model.Role, string) (*model.Order, error)
}

// CreateOrder delegates to provided function or returns a pending order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID uuid.UUID, productID, addressID string, quantity int) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, productID, addressID, quantity)
	}
	order := SampleOrder(model.OrderStatusPending)
	order.UserID = userID
	order.Quantity = quantity
	return &order, nil
}

// Order returns predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, role, orderID)
	}
	order := SampleOrder(model.OrderStatusPending)
	return &order, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{SampleOrder(model.OrderStatusPending)}, nil
}

// AllOrders returns predefined orders across users.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx)
	}
	return []model.Order{SampleOrder(model.OrderStatusPending)}, nil
}

// CompleteOrder marks predefined order as completed.
func (s OrderFacadeStub) CompleteOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID)
	}
	order := SampleOrder(model.OrderStatusCompleted)
	return &order, nil
}

// CancelOrder marks predefined order as cancelled.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	order := SampleOrder(model.OrderStatusCancelled)
	return &order, nil
}

// DeleteOrder removes predefined order.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, role, orderID)
	}
	order := SampleOrder(model.OrderStatusPending)
	return &order, nil
}

// StockFacadeStub simulates stock operations.
type StockFacadeStub struct {
	StockFn func(context.Context, string) (*model.Stock, error)
	SetFn   func(context.Context, string, int) (*model.Stock, error)
}

// Stock returns stored stock or default data.
func (s StockFacadeStub) Stock(ctx context.Context, stockID string) (*model.Stock, error) {
	if s.StockFn != nil {
		return s.StockFn(ctx, stockID)
	}
	return &model.Stock{ID: uuid.MustParse("55555555-5555-5555-5555-555555555555"), Quantity: 7}, nil
}

// SetStock overwrites the stubbed stock or returns the requested quantity.
func (s StockFacadeStub) SetStock(ctx context.Context, stockID string, quantity int) (*model.Stock, error) {
	if s.SetFn != nil {
		return s.SetFn(ctx, stockID, quantity)
	}
	return &model.Stock{ID: uuid.MustParse("55555555-5555-5555-5555-555555555555"), Quantity: quantity}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	StockFacadeStub
}

// ReaperCancelCall stores information about CancelOrder invocations.
type ReaperCancelCall struct {
	OrderID string
}

// ReaperFacadeStub mimics worker interactions with storefront facade.
type ReaperFacadeStub struct {
	Batches        [][]model.Order
	StaleFn        func(context.Context, time.Time, int) ([]model.Order, error)
	CancelFn       func(context.Context, string) (*model.Order, error)
	Cancels        []ReaperCancelCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *ReaperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *ReaperFacadeStub) Unlock() { s.mu.Unlock() }

// StalePendingOrders returns batches from configured queue.
func (s *ReaperFacadeStub) StalePendingOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.StaleFn != nil {
		return s.StaleFn(ctx, olderThan, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CancelOrder records cancel requests.
func (s *ReaperFacadeStub) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancels = append(s.Cancels, ReaperCancelCall{OrderID: orderID})
	order := SampleOrder(model.OrderStatusCancelled)
	return &order, nil
}
