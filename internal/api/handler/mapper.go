package handler

import (
	"github.com/tienda-online/store-api/internal/core/domain"
)

// --- Domain entity → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin(),
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

// toProductResponse serializes a product per variant: the discriminant drives
// which optional fields are present, everything else stays absent.
func toProductResponse(p *domain.Product) productResponse {
	resp := productResponse{
		ID:    p.ID,
		Type:  string(p.Kind),
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
	switch p.Kind {
	case domain.KindElectronic:
		warranty := p.WarrantyMonths
		resp.WarrantyMonths = &warranty
	case domain.KindApparel:
		resp.Size = p.Size
		resp.Color = p.Color
	}
	return resp
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		items[i] = orderLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal(),
		}
	}
	return orderResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		ClientName: o.ClientName,
		CreatedAt:  o.CreatedAt,
		Items:      items,
		Total:      o.Total(),
	}
}

func toOrderListResponse(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
