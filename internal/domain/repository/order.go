package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// Create reserves stock and inserts the order inside a single transaction;
// a failed reservation leaves no order behind. Transition atomically guards
// on the pending status and, when restock is set, returns the order's
// quantity to its product's stock in the same transaction. Delete soft
// deletes the order and compensates stock while the order is still pending.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Transition(ctx context.Context, id uuid.UUID, to model.OrderStatus, restock bool) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
}
