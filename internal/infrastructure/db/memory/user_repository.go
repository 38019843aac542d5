// Package memory provides the in-process storage backing the store API.
// Every repository guards its map with a single RWMutex, which is the only
// concurrency control the service needs: stock decrement is a read-modify-
// write that must not interleave between concurrent orders.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tienda-online/store-api/internal/core/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	ids   []string // insertion order for List
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return fmt.Errorf("user %s already exists", u.ID)
	}
	clone := *u
	r.users[u.ID] = &clone
	r.ids = append(r.ids, u.ID)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.ids))
	for _, id := range r.ids {
		clone := *r.users[id]
		out = append(out, &clone)
	}
	return out, nil
}
