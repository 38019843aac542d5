package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// CatalogService defines use-case operations for the product inventory.
// Add takes a fully-constructed product: the transport layer interprets the
// variant tag and builds the entity through the domain constructors, which
// already enforce all field invariants.
type CatalogService interface {
	Add(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
}
