package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a client or administrator depending on the role tag and
// stores it. The tag is case-insensitive; anything other than "client" or
// "admin" is rejected.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(input.Role)) {
	case string(domain.RoleClient):
		user, err = domain.NewClient(input.Name, input.Email, input.Address)
	case string(domain.RoleAdmin):
		user, err = domain.NewAdministrator(input.Name, input.Email)
	default:
		return nil, domain.NewValidationError("role must be 'client' or 'admin'")
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to store user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
