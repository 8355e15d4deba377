package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address owned by a user.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Street    string
	City      string
	Country   string
	CreatedAt time.Time
}
