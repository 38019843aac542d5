package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tienda-online/store-api/internal/api/handler"
	"github.com/tienda-online/store-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	userService ports.UserService,
	catalogService ports.CatalogService,
	orderService ports.OrderService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService, userService)

	// --- Routes ---
	v1 := e.Group("/v1")

	v1.POST("/users", userHandler.Register)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:user_id", userHandler.Get)
	v1.GET("/users/:user_id/orders", orderHandler.ListForUser)

	v1.POST("/products", productHandler.Create)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:product_id", productHandler.Get)
	v1.DELETE("/products/:product_id", productHandler.Delete)

	v1.POST("/orders", orderHandler.Create)

	return e
}
