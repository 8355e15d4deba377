package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/events"
	"github.com/craftpine/storefront/internal/usecase"
)

// StorefrontFacade aggregates use cases behind a single application surface
// and emits lifecycle events after state changes commit.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	stocks    *usecase.StockUseCase
	publisher events.Publisher
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, stocks *usecase.StockUseCase, publisher events.Publisher) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, orders: orders, stocks: stocks, publisher: publisher}
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (uuid.UUID, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, userID uuid.UUID, productID, addressID string, quantity int) (*model.Order, error) {
	order, err := f.orders.Create(ctx, userID, productID, addressID, quantity)
	if err != nil {
		return nil, err
	}
	f.publisher.PublishOrder(events.TypeOrderCreated, *order)
	return order, nil
}

// Order resolves a single order, refusing access to other users' orders
// unless the caller is an admin.
func (f *StorefrontFacade) Order(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error) {
	order, err := f.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && order.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StorefrontFacade) CompleteOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.orders.Complete(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.publisher.PublishOrder(events.TypeOrderCompleted, *order)
	return order, nil
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := f.orders.Cancel(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.publisher.PublishOrder(events.TypeOrderCancelled, *order)
	return order, nil
}

// DeleteOrder soft deletes an order owned by the caller; admins may delete
// any order.
func (f *StorefrontFacade) DeleteOrder(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error) {
	if role != model.RoleAdmin {
		owned, err := f.orders.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if owned.UserID != userID {
			return nil, domainErrors.ErrForbidden
		}
	}

	order, err := f.orders.Delete(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.publisher.PublishOrder(events.TypeOrderDeleted, *order)
	return order, nil
}

func (f *StorefrontFacade) Stock(ctx context.Context, stockID string) (*model.Stock, error) {
	return f.stocks.Get(ctx, stockID)
}

// SetStock overwrites a stock counter, an administrative correction path.
func (f *StorefrontFacade) SetStock(ctx context.Context, stockID string, quantity int) (*model.Stock, error) {
	return f.stocks.Set(ctx, stockID, quantity)
}

// StalePendingOrders lists pending orders created before the cutoff.
func (f *StorefrontFacade) StalePendingOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return f.orders.StalePending(ctx, olderThan, limit)
}
