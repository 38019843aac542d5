package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda-online/store-api/internal/api/metrics"
	"github.com/tienda-online/store-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations. It also holds the
// user service: listing a user's orders checks the user exists first, so an
// unknown id is a 404 rather than an empty list.
type OrderHandler struct {
	orders ports.OrderService
	users  ports.UserService
}

func NewOrderHandler(orders ports.OrderService, users ports.UserService) *OrderHandler {
	return &OrderHandler{orders: orders, users: users}
}

// Create places a new order.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := h.orders.Place(c.Request().Context(), ports.PlaceOrderInput{
		ClientID: req.ClientID,
		Items:    items,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderTotalAmount.Observe(order.Total())
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// ListForUser returns all orders of a user.
//
// @Summary      List a user's orders
// @Tags         orders
// @Produce      json
// @Param        user_id  path      string  true  "User id"
// @Success      200      {array}   orderResponse
// @Failure      404      {object}  map[string]string
// @Router       /v1/users/{user_id}/orders [get]
func (h *OrderHandler) ListForUser(c echo.Context) error {
	userID := c.Param("user_id")

	// Existence check first: the service itself returns an empty list for
	// unknown users.
	if _, err := h.users.Get(c.Request().Context(), userID); err != nil {
		return err
	}

	orders, err := h.orders.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}
