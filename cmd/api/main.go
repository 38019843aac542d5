package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tienda-online/store-api/internal/api"
	"github.com/tienda-online/store-api/internal/core/service"
	"github.com/tienda-online/store-api/internal/infrastructure/config"
	"github.com/tienda-online/store-api/internal/infrastructure/db/memory"
	"github.com/tienda-online/store-api/internal/infrastructure/queue"
	"github.com/tienda-online/store-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()

	// --- Stock alert pipeline ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alertService := service.NewStockAlertService(cfg.StockAlert.Threshold, log)
	dispatcher := queue.NewDispatcher(cfg.StockAlert.Workers, alertService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(productRepo, log)
	orderService := service.NewOrderService(userRepo, productRepo, orderRepo, dispatcher, log)

	e := api.NewRouter(userService, catalogService, orderService, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("store api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("store api stopped")
}
