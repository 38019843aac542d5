package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// StockDecrement is one position of a batch stock decrement.
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// ProductRepository defines storage operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	// FindByID retrieves a product by id, returning domain.NotFoundError when absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Delete removes a product, returning domain.NotFoundError when absent.
	Delete(ctx context.Context, id string) error
	// List returns all products in insertion order.
	List(ctx context.Context) ([]*domain.Product, error)
	// DecrementStock applies all decrements atomically: either every product
	// had sufficient stock and all stocks are reduced, or no stock changes at
	// all and the validation error of the offending position is returned.
	DecrementStock(ctx context.Context, decrements []StockDecrement) error
}
