package ports

import "context"

// StockAlertInput describes the stock level of a product after an order
// decremented it.
type StockAlertInput struct {
	ProductID   string
	ProductName string
	Remaining   int
}

// StockAlertService processes a single stock-level notification.
type StockAlertService interface {
	Process(ctx context.Context, input StockAlertInput) error
}

// StockNotifier accepts stock-level notifications for asynchronous
// processing. Enqueue must not block the order transaction.
type StockNotifier interface {
	Enqueue(input StockAlertInput)
}
