package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/domain/repository"
)

// OrderUseCase orchestrates the order lifecycle: creation against the stock
// ledger, the pending -> completed|cancelled state machine, and compensating
// stock adjustments on cancellation and deletion.
type OrderUseCase struct {
	orders    repository.OrderRepository
	users     repository.UserRepository
	products  repository.ProductRepository
	addresses repository.AddressRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	addresses repository.AddressRepository,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, products: products, addresses: addresses}
}

// Create places an order: resolves the actor, product, and address, reserves
// stock, and persists the order as pending. Total is snapshot as
// price*quantity at creation time.
func (u *OrderUseCase) Create(ctx context.Context, actorID uuid.UUID, rawProductID, rawAddressID string, quantity int) (*model.Order, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	productID, err := ParseID(rawProductID)
	if err != nil {
		return nil, err
	}
	addressID, err := ParseID(rawAddressID)
	if err != nil {
		return nil, err
	}

	user, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	address, err := u.addresses.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		ProductID: product.ID,
		AddressID: address.ID,
		Quantity:  quantity,
		Total:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:    model.OrderStatusPending,
	}
	return u.orders.Create(ctx, order)
}

// Get returns one order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, rawID string) (*model.Order, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, id)
}

// ListByUser returns the user's orders. No orders is a valid empty list.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// ListAll returns every order, administrative and unfiltered.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Complete moves a pending order to completed. No stock effect.
func (u *OrderUseCase) Complete(ctx context.Context, rawID string) (*model.Order, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.orders.Transition(ctx, id, model.OrderStatusCompleted, false)
}

// Cancel moves a pending order to cancelled and returns the reserved
// quantity to the product's stock. Cancelling a non-pending order fails,
// so stock is never restored twice.
func (u *OrderUseCase) Cancel(ctx context.Context, rawID string) (*model.Order, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.orders.Transition(ctx, id, model.OrderStatusCancelled, true)
}

// UpdateStatus applies a client-requested transition. Pending is the initial
// state only and is never a valid target; the check happens before any
// transaction is opened.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, rawID, rawStatus string) (*model.Order, error) {
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok || !model.OrderStatusPending.CanTransitionTo(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if status == model.OrderStatusCompleted {
		return u.Complete(ctx, rawID)
	}
	return u.Cancel(ctx, rawID)
}

// Delete soft deletes an order. While the order is still pending the
// reserved stock is restored; terminal orders are removed without touching
// stock.
func (u *OrderUseCase) Delete(ctx context.Context, rawID string) (*model.Order, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.orders.Delete(ctx, id)
}

// StalePending returns pending orders created before the cutoff, for
// background expiry.
func (u *OrderUseCase) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return u.orders.ListStalePending(ctx, olderThan, limit)
}
