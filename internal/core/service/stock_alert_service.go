package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/api/metrics"
	"github.com/tienda-online/store-api/internal/core/ports"
)

const defaultLowStockThreshold = 5

// StockAlertService watches post-order stock levels: it keeps the stock gauge
// current and warns when a product is running low.
type StockAlertService struct {
	threshold int
	logger    zerolog.Logger
}

// NewStockAlertService returns a StockAlertService that raises an alert when
// the remaining stock is at or below threshold. A non-positive threshold
// falls back to the default.
func NewStockAlertService(threshold int, logger zerolog.Logger) *StockAlertService {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return &StockAlertService{threshold: threshold, logger: logger}
}

// Process records the stock level and raises a low-stock alert if needed.
func (s *StockAlertService) Process(_ context.Context, input ports.StockAlertInput) error {
	metrics.ProductStockLevel.
		WithLabelValues(input.ProductID, input.ProductName).
		Set(float64(input.Remaining))

	if input.Remaining <= s.threshold {
		s.logger.Warn().
			Str("product_id", input.ProductID).
			Str("product", input.ProductName).
			Int("remaining", input.Remaining).
			Msg("product stock running low")
		metrics.LowStockAlertsTotal.WithLabelValues(input.ProductName).Inc()
	}
	return nil
}
