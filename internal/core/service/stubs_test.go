package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	order     []string
	createErr error // if set, Create returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *u
	r.users[u.ID] = &clone
	r.order = append(r.order, u.ID)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.users[id]
		out = append(out, &clone)
	}
	return out, nil
}

type stubProductRepo struct {
	products  map[string]*domain.Product
	order     []string
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.products[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.NewNotFoundError("product", id)
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.NewNotFoundError("product", id)
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.products[id]
		out = append(out, &clone)
	}
	return out, nil
}

// DecrementStock mirrors the real memory repo: validate the whole batch, then
// mutate, never partially.
func (r *stubProductRepo) DecrementStock(_ context.Context, decrements []ports.StockDecrement) error {
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

type stubOrderRepo struct {
	orders    map[string]*domain.Order
	order     []string
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *o
	r.orders[o.ID] = &clone
	r.order = append(r.order, o.ID)
	return nil
}

func (r *stubOrderRepo) ListByClientID(_ context.Context, clientID string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, id := range r.order {
		if o := r.orders[id]; o.ClientID == clientID {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubNotifier records every enqueued stock alert.
type stubNotifier struct {
	alerts []ports.StockAlertInput
}

func (n *stubNotifier) Enqueue(input ports.StockAlertInput) {
	n.alerts = append(n.alerts, input)
}

// ---------------------------------------------------------------------------
// Error helpers
// ---------------------------------------------------------------------------

func isValidationErr(err error) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve)
}

func isNotFoundErr(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
