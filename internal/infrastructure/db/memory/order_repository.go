package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tienda-online/store-api/internal/core/domain"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	ids    []string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*domain.Order)}
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; exists {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	r.orders[o.ID] = cloneOrder(o)
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *OrderRepository) ListByClientID(_ context.Context, clientID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Order
	for _, id := range r.ids {
		if o := r.orders[id]; o.ClientID == clientID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Lines = make([]domain.OrderLine, len(o.Lines))
	copy(clone.Lines, o.Lines)
	return &clone
}
