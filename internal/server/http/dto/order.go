package dto

import "time"

// CreateOrderRequest describes order creation payload.
type CreateOrderRequest struct {
	ProductID string `json:"product"`
	AddressID string `json:"address"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse describes a single order entry.
type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	AddressID string    `json:"address_id"`
	Quantity  int       `json:"quantity"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
