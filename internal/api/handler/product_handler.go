package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tienda-online/store-api/internal/api/metrics"
	"github.com/tienda-online/store-api/internal/core/domain"
	"github.com/tienda-online/store-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for inventory operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a product to the inventory. The type tag selects the variant;
// an empty tag means generic.
//
// @Summary      Add a product to the inventory
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := buildProduct(req)
	if err != nil {
		return err
	}

	created, err := h.service.Add(c.Request().Context(), product)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(created.Kind)).Inc()
	return c.JSON(http.StatusCreated, toProductResponse(created))
}

// buildProduct interprets the variant tag and constructs the entity through
// the matching domain constructor.
func buildProduct(req createProductRequest) (*domain.Product, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case string(domain.KindElectronic):
		warranty := domain.DefaultWarrantyMonths
		if req.WarrantyMonths != nil {
			warranty = *req.WarrantyMonths
		}
		return domain.NewElectronicProduct(req.Name, req.Price, req.Stock, warranty)
	case string(domain.KindApparel):
		if strings.TrimSpace(req.Size) == "" {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "size is required for apparel products")
		}
		if strings.TrimSpace(req.Color) == "" {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "color is required for apparel products")
		}
		return domain.NewApparelProduct(req.Name, req.Price, req.Stock, req.Size, req.Color)
	case "", string(domain.KindGeneric):
		return domain.NewProduct(req.Name, req.Price, req.Stock)
	default:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "type must be one of: generic, electronic, apparel")
	}
}

// Get returns a single product by id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  productResponse
// @Failure      404         {object}  map[string]string
// @Router       /v1/products/{product_id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// List returns the whole inventory.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  productResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Delete removes a product from the inventory.
//
// @Summary      Remove a product
// @Tags         products
// @Param        product_id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{product_id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("product_id")); err != nil {
		return err
	}
	metrics.ProductsRemovedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
