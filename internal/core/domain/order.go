package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one purchased position within an order. UnitPrice is the
// product price at the moment the order was placed, so historical totals do
// not drift when the catalog changes.
type OrderLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Subtotal returns the line amount (unit price times quantity).
func (l OrderLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Order is an immutable record of a client purchase.
type Order struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"client_id"`
	ClientName string      `json:"client_name"`
	CreatedAt  time.Time   `json:"created_at"`
	Lines      []OrderLine `json:"lines"`
}

// NewOrder builds an order for a client. Only users with the client role may
// own orders, every line must carry a positive quantity, and at least one
// line is required.
func NewOrder(client *User, lines []OrderLine) (*Order, error) {
	if client == nil || client.Role != RoleClient {
		return nil, NewValidationError("orders can only be placed by clients")
	}
	if len(lines) == 0 {
		return nil, NewValidationError("order must contain at least one item")
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, NewValidationError("quantity for %s must be positive", l.ProductName)
		}
	}
	return &Order{
		ID:         uuid.NewString(),
		ClientID:   client.ID,
		ClientName: client.Name,
		CreatedAt:  time.Now().UTC(),
		Lines:      lines,
	}, nil
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.Lines {
		total += l.Subtotal()
	}
	return total
}
