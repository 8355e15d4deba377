package model

import (
	"time"

	"github.com/google/uuid"
)

// Role controls access to administrative endpoints.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User describes a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
