package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	// FindByID retrieves a user by id, returning domain.NotFoundError when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
}
