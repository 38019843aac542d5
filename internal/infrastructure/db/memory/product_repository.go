package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	ids      []string
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*domain.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[p.ID]; exists {
		return fmt.Errorf("product %s already exists", p.ID)
	}
	clone := *p
	r.products[p.ID] = &clone
	r.ids = append(r.ids, p.ID)
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.NewNotFoundError("product", id)
	}
	clone := *p
	return &clone, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.NewNotFoundError("product", id)
	}
	delete(r.products, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.ids))
	for _, id := range r.ids {
		clone := *r.products[id]
		out = append(out, &clone)
	}
	return out, nil
}

// DecrementStock validates the whole batch under the write lock before
// mutating anything, so the operation is all-or-nothing even when the same
// product appears in several positions or orders run concurrently.
func (r *ProductRepository) DecrementStock(_ context.Context, decrements []ports.StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	needed := make(map[string]int, len(decrements))
	for _, d := range decrements {
		p, ok := r.products[d.ProductID]
		if !ok {
			return domain.NewNotFoundError("product", d.ProductID)
		}
		if d.Quantity <= 0 {
			return domain.NewValidationError("quantity for %s must be positive", p.Name)
		}
		needed[d.ProductID] += d.Quantity
		if needed[d.ProductID] > p.Stock {
			return domain.NewValidationError("insufficient stock for %s", p.Name)
		}
	}

	for id, qty := range needed {
		r.products[id].Stock -= qty
	}
	return nil
}
