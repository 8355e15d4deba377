package dto

// UpdateStockRequest describes an administrative stock overwrite.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// StockResponse describes current stock level for a product.
type StockResponse struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
