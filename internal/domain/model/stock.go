package model

import "github.com/google/uuid"

// Stock is the available-quantity counter owned by exactly one product.
// Quantity is never negative after a committed operation.
type Stock struct {
	ID       uuid.UUID
	Quantity int
}
