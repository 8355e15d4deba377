package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. StockID references the product's stock record;
// StockQuantity is the quantity observed at read time.
type Product struct {
	ID            uuid.UUID
	Name          string
	Price         decimal.Decimal
	StockID       uuid.UUID
	StockQuantity int
	CreatedAt     time.Time
}
