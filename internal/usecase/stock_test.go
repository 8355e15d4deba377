package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
)

type stubStockRepository struct {
	getFn    func(context.Context, uuid.UUID) (*model.Stock, error)
	reduceFn func(context.Context, uuid.UUID, int) (*model.Stock, error)
	setFn    func(context.Context, uuid.UUID, int) (*model.Stock, error)
}

func (s stubStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Stock, error) {
	return s.getFn(ctx, id)
}

func (s stubStockRepository) Reduce(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	return s.reduceFn(ctx, id, quantity)
}

func (s stubStockRepository) Set(ctx context.Context, id uuid.UUID, quantity int) (*model.Stock, error) {
	return s.setFn(ctx, id, quantity)
}

func TestStockUseCaseGetRejectsMalformedID(t *testing.T) {
	uc := NewStockUseCase(stubStockRepository{getFn: func(context.Context, uuid.UUID) (*model.Stock, error) {
		t.Fatal("repository should not be called for malformed id")
		return nil, nil
	}})

	if _, err := uc.Get(context.Background(), "oops"); !errors.Is(err, domainErrors.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestStockUseCaseGet(t *testing.T) {
	id := uuid.New()
	uc := NewStockUseCase(stubStockRepository{getFn: func(_ context.Context, got uuid.UUID) (*model.Stock, error) {
		if got != id {
			t.Fatalf("unexpected id %s", got)
		}
		return &model.Stock{ID: id, Quantity: 10}, nil
	}})

	stock, err := uc.Get(context.Background(), id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.Quantity != 10 {
		t.Fatalf("unexpected quantity %d", stock.Quantity)
	}
}

func TestStockUseCaseReduceRejectsNonPositiveQuantity(t *testing.T) {
	uc := NewStockUseCase(stubStockRepository{reduceFn: func(context.Context, uuid.UUID, int) (*model.Stock, error) {
		t.Fatal("repository should not be called for invalid quantity")
		return nil, nil
	}})

	for _, qty := range []int{0, -1} {
		if _, err := uc.Reduce(context.Background(), uuid.New().String(), qty); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity for %d, got %v", qty, err)
		}
	}
}

func TestStockUseCaseReducePropagatesInsufficientStock(t *testing.T) {
	uc := NewStockUseCase(stubStockRepository{reduceFn: func(context.Context, uuid.UUID, int) (*model.Stock, error) {
		return nil, domainErrors.ErrInsufficientStock
	}})

	if _, err := uc.Reduce(context.Background(), uuid.New().String(), 5); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestStockUseCaseSet(t *testing.T) {
	id := uuid.New()
	uc := NewStockUseCase(stubStockRepository{setFn: func(_ context.Context, got uuid.UUID, quantity int) (*model.Stock, error) {
		if got != id || quantity != 7 {
			t.Fatalf("unexpected arguments: %s %d", got, quantity)
		}
		return &model.Stock{ID: id, Quantity: quantity}, nil
	}})

	stock, err := uc.Set(context.Background(), id.String(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.Quantity != 7 {
		t.Fatalf("unexpected quantity %d", stock.Quantity)
	}

	if _, err := uc.Set(context.Background(), id.String(), -1); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}
