package dto

import "time"

// CreateOrderRequest represents the API request for placing an order
type CreateOrderRequest struct {
	UserID    uint64 `json:"userId" binding:"required"`
	Reference string `json:"reference" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required"`
}

// OrderResponse represents a stored order
type OrderResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Reference string    `json:"reference"`
	Quantity  int32     `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
