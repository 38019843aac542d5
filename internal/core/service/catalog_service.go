package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

type CatalogService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Add stores a product that was already validated by its domain constructor.
func (s *CatalogService) Add(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to store product")
		return nil, err
	}
	s.logger.Info().Str("product_id", p.ID).Str("kind", string(p.Kind)).Msg("product added")
	return p, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Remove deletes a product from the inventory. Orders referencing it keep
// their own snapshot lines, so history stays intact.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product removed")
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}
