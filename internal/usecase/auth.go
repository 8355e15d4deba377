package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/domain/repository"
	"github.com/craftpine/storefront/internal/pkg/auth"
)

// AuthUseCase verifies credentials and issues actor tokens.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   auth.PasswordHasher
	strategy auth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher auth.PasswordHasher, strategy auth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, strategy: strategy}
}

// Login checks email/password and returns the user with a signed token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.strategy.IssueToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ParseToken returns the actor identity and role encoded in the token.
func (u *AuthUseCase) ParseToken(token string) (uuid.UUID, model.Role, error) {
	userID, role, err := u.strategy.ParseToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, model.Role(role), nil
}
