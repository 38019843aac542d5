package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

type OrderService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
	notifier ports.StockNotifier // optional; nil disables stock alerts
	logger   zerolog.Logger
}

func NewOrderService(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	notifier ports.StockNotifier,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		users:    users,
		products: products,
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// Place runs the order transaction in two phases: every requested line is
// resolved and validated before any stock is touched, then all decrements are
// applied in a single atomic batch. A failure in either phase leaves every
// product's stock unchanged.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	client, err := s.users.FindByID(ctx, input.ClientID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, domain.NewValidationError("user %s must exist and be a client", input.ClientID)
		}
		return nil, err
	}
	if client.Role != domain.RoleClient {
		return nil, domain.NewValidationError("orders can only be placed by clients")
	}

	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("order must contain at least one item")
	}

	// Phase 1: validate every line in caller order.
	lines := make([]domain.OrderLine, 0, len(input.Items))
	decrements := make([]ports.StockDecrement, 0, len(input.Items))
	for _, item := range input.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if item.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity for %s must be positive", product.Name)
		}
		if !product.HasStock(item.Quantity) {
			return nil, domain.NewValidationError("insufficient stock for %s", product.Name)
		}
		lines = append(lines, domain.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		})
		decrements = append(decrements, ports.StockDecrement{
			ProductID: product.ID,
			Quantity:  item.Quantity,
		})
	}

	// Phase 2: atomic decrement. The repository re-checks the whole batch
	// under its own lock, so concurrent orders cannot interleave decrements.
	if err := s.products.DecrementStock(ctx, decrements); err != nil {
		return nil, err
	}

	order, err := domain.NewOrder(client, lines)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("client_id", client.ID).Msg("failed to store order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("client_id", client.ID).
		Int("lines", len(order.Lines)).
		Float64("total", order.Total()).
		Msg("order placed")

	s.notifyStockLevels(ctx, lines)

	return order, nil
}

// ListForUser returns all orders owned by userID, in insertion order.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.ListByClientID(ctx, userID)
}

// notifyStockLevels reports the post-decrement stock of every ordered product
// to the notifier. Failures to resolve a product here are ignored: the order
// is already committed and alerts are best-effort.
func (s *OrderService) notifyStockLevels(ctx context.Context, lines []domain.OrderLine) {
	if s.notifier == nil {
		return
	}
	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			continue
		}
		s.notifier.Enqueue(ports.StockAlertInput{
			ProductID:   product.ID,
			ProductName: product.Name,
			Remaining:   product.Stock,
		})
	}
}
