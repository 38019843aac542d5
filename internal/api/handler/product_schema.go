package handler

// --- Request / Response types ---

// createProductRequest carries the variant tag plus the union of all variant
// fields. Which optional fields are required depends on the tag: apparel
// needs size and color, electronic may override the default warranty.
type createProductRequest struct {
	Type           string  `json:"type"`
	Name           string  `json:"name"  validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Stock          int     `json:"stock" validate:"min=0"`
	WarrantyMonths *int    `json:"warranty_months,omitempty" validate:"omitempty,min=0"`
	Size           string  `json:"size,omitempty"`
	Color          string  `json:"color,omitempty"`
}

// productResponse renders a product with only the fields of its variant:
// warranty_months appears for electronic, size/color for apparel, and a
// generic product carries neither.
type productResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	WarrantyMonths *int    `json:"warranty_months,omitempty"`
	Size           string  `json:"size,omitempty"`
	Color          string  `json:"color,omitempty"`
}
