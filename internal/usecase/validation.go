package usecase

import (
	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
)

// ParseID validates a client-supplied identifier.
func ParseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domainErrors.ErrInvalidID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainErrors.ErrInvalidID
	}
	return id, nil
}
