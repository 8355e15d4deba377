package auth

import (
	"time"

	"github.com/google/uuid"
)

// Strategy issues and verifies bearer tokens carrying the actor identity
// and role.
type Strategy interface {
	IssueToken(userID uuid.UUID, role string) (string, error)
	ParseToken(token string) (uuid.UUID, string, error)
	Name() string
}

// Options tunes strategy behaviour.
type Options struct {
	TTL time.Duration
}
