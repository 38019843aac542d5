package ports

import (
	"context"

	"github.com/tienda-online/store-api/internal/core/domain"
)

// RegisterUserInput carries the data needed to register a user. Role is a
// case-insensitive tag, one of "client" or "admin". Address is required for
// clients and ignored for administrators.
type RegisterUserInput struct {
	Role    string
	Name    string
	Email   string
	Address string
}

// UserService defines use-case operations for users.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
