package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// StockRepository describes persistence operations with stock counters.
//
// Reduce is the reservation path: a single conditional decrement that fails
// with ErrInsufficientStock when the result would go negative, leaving the
// counter unchanged. Order creation repeats the same conditional decrement
// inside its own transaction so reservation and insert commit atomically;
// Reduce serves callers operating on the ledger directly. Set unconditionally
// overwrites the quantity.
type StockRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Stock, error)
	Reduce(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error)
	Set(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error)
}
