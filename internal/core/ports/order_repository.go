package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// OrderRepository defines storage operations for orders. Orders are immutable
// once created, so there is no update or delete.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	// ListByClientID returns all orders owned by the given client in insertion
	// order. An unknown client id yields an empty slice, not an error.
	ListByClientID(ctx context.Context, clientID string) ([]*domain.Order, error)
}
