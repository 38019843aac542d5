package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ProductKind discriminates the product variants.
type ProductKind string

const (
	KindGeneric    ProductKind = "generic"
	KindElectronic ProductKind = "electronic"
	KindApparel    ProductKind = "apparel"
)

// DefaultWarrantyMonths is applied to electronic products when the caller
// does not specify a warranty.
const DefaultWarrantyMonths = 24

// Product is a catalog item. Kind selects which variant fields are
// meaningful: WarrantyMonths for electronic, Size/Color for apparel. Stock is
// only ever mutated through AdjustStock, which enforces the non-negative
// invariant.
type Product struct {
	ID             string      `json:"id"`
	Kind           ProductKind `json:"kind"`
	Name           string      `json:"name"`
	Price          float64     `json:"price"`
	Stock          int         `json:"stock"`
	WarrantyMonths int         `json:"warranty_months,omitempty"`
	Size           string      `json:"size,omitempty"`
	Color          string      `json:"color,omitempty"`
}

// NewProduct builds a generic product.
func NewProduct(name string, price float64, stock int) (*Product, error) {
	return newProduct(KindGeneric, name, price, stock)
}

// NewElectronicProduct builds an electronic product with a warranty in months.
func NewElectronicProduct(name string, price float64, stock, warrantyMonths int) (*Product, error) {
	p, err := newProduct(KindElectronic, name, price, stock)
	if err != nil {
		return nil, err
	}
	if warrantyMonths < 0 {
		return nil, NewValidationError("warranty months must not be negative")
	}
	p.WarrantyMonths = warrantyMonths
	return p, nil
}

// NewApparelProduct builds an apparel product. Size and color are mandatory.
func NewApparelProduct(name string, price float64, stock int, size, color string) (*Product, error) {
	p, err := newProduct(KindApparel, name, price, stock)
	if err != nil {
		return nil, err
	}
	p.Size = strings.TrimSpace(size)
	p.Color = strings.TrimSpace(color)
	if p.Size == "" {
		return nil, NewValidationError("size must not be empty")
	}
	if p.Color == "" {
		return nil, NewValidationError("color must not be empty")
	}
	return p, nil
}

func newProduct(kind ProductKind, name string, price float64, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name must not be empty")
	}
	if price < 0 {
		return nil, NewValidationError("price must not be negative")
	}
	if stock < 0 {
		return nil, NewValidationError("stock must not be negative")
	}
	return &Product{
		ID:    uuid.NewString(),
		Kind:  kind,
		Name:  name,
		Price: price,
		Stock: stock,
	}, nil
}

// HasStock reports whether qty units can be taken from the current stock.
func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.Stock >= qty
}

// AdjustStock applies a delta to the stock, rejecting any change that would
// drive it negative.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return NewValidationError("insufficient stock for %s", p.Name)
	}
	p.Stock = next
	return nil
}
