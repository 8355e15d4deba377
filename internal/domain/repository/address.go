package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// AddressRepository exposes delivery address lookups consumed by the order lifecycle.
type AddressRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Address, error)
}
