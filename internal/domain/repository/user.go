package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// UserRepository exposes account lookups consumed by the order lifecycle.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
