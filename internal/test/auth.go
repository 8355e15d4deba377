package test

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/craftpine/storefront/internal/domain/model"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(uuid.UUID, string) (string, error)
	ParseFn func(string) (uuid.UUID, string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID uuid.UUID, role string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, role)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (uuid.UUID, string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return uuid.Nil, string(model.RoleCustomer), nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      uuid.UUID
	Role    model.Role
	Err     error
	ParseFn func(string) (uuid.UUID, model.Role, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (uuid.UUID, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return uuid.Nil, "", s.Err
	}
	role := s.Role
	if role == "" {
		role = model.RoleCustomer
	}
	return s.ID, role, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn func(string) (uuid.UUID, model.Role, error)
}

// Login returns user and token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns stored identity for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (uuid.UUID, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return uuid.Nil, model.RoleCustomer, nil
}
