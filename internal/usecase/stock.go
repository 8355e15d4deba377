package usecase

import (
	"context"

	domainErrors "github.com/craftpine/storefront/internal/domain/errors"
	"github.com/craftpine/storefront/internal/domain/model"
	"github.com/craftpine/storefront/internal/domain/repository"
)

// StockUseCase is the stock ledger: it owns the available-quantity counter
// per product and enforces non-negativity.
type StockUseCase struct {
	stocks repository.StockRepository
}

// NewStockUseCase constructs StockUseCase.
func NewStockUseCase(stocks repository.StockRepository) *StockUseCase {
	return &StockUseCase{stocks: stocks}
}

// Get returns the stock record for the identifier.
func (u *StockUseCase) Get(ctx context.Context, rawID string) (*model.Stock, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return u.stocks.GetByID(ctx, id)
}

// Reduce reserves quantity units. The decrement is atomic; when the result
// would be negative the counter stays untouched.
func (u *StockUseCase) Reduce(ctx context.Context, rawID string, quantity int) (*model.Stock, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.stocks.Reduce(ctx, id, quantity)
}

// Set overwrites the counter, used for administrative restoration.
func (u *StockUseCase) Set(ctx context.Context, rawID string, quantity int) (*model.Stock, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.stocks.Set(ctx, id, quantity)
}
