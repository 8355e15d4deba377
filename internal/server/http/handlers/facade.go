package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (uuid.UUID, model.Role, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, productID, addressID string, quantity int) (*model.Order, error)
	Order(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error)
	Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	CompleteOrder(ctx context.Context, orderID string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*model.Order, error)
	DeleteOrder(ctx context.Context, userID uuid.UUID, role model.Role, orderID string) (*model.Order, error)
}

// StockFacade provides stock related operations.
type StockFacade interface {
	Stock(ctx context.Context, stockID string) (*model.Stock, error)
	SetStock(ctx context.Context, stockID string, quantity int) (*model.Stock, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	StockFacade
}
