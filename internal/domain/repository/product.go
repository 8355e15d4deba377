package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// ProductRepository exposes catalog lookups consumed by the order lifecycle.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}
