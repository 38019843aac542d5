package handler

import "time"

// --- Request / Response types ---

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type placeOrderRequest struct {
	ClientID string             `json:"client_id" validate:"required"`
	Items    []orderItemRequest `json:"items"     validate:"required,min=1,dive"`
}

type orderLineResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []orderLineResponse `json:"items"`
	Total      float64             `json:"total"`
}
