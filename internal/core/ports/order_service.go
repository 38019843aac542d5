package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// OrderItemInput is one requested position of an order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries the client id and the requested items in the order
// supplied by the caller.
type PlaceOrderInput struct {
	ClientID string
	Items    []OrderItemInput
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// Place runs the order transaction: validate every line, then decrement
	// stock all-or-nothing, then record the order. On any failure no stock
	// is mutated.
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	// ListForUser returns the orders owned by userID. An unknown user yields
	// an empty slice; existence checks are the caller's concern.
	ListForUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
