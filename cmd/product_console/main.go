package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ridloal/product-console/internal/platform/config"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/platform/metrics"
	"github.com/ridloal/product-console/internal/product/client"
	"github.com/ridloal/product-console/internal/product/console"
	"github.com/ridloal/product-console/internal/product/web"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config.LoadDotEnv() // .env opsional
	cfg := config.LoadConsoleConfig()

	logger.Info("Starting Product Console...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup Dependencies
	clientMetrics := metrics.NewClientMetrics(prometheus.DefaultRegisterer)
	productClient := client.NewProductServiceClient(cfg.ProductAPIURL, cfg.RequestTimeout, clientMetrics)
	productConsole := console.NewConsole(productClient)
	consoleHandler := web.NewConsoleHandler(productConsole)

	// Setup Gin Router
	router := gin.Default()
	consoleHandler.RegisterRoutes(router)
	web.RegisterDiagnostics(router, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Product Console running on port " + cfg.Server.Port)
		logger.Info("Product Console connecting to Product API at " + cfg.ProductAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Product Console failed to start or crashed", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Product Console shutdown failed", err)
	}
	logger.Info("Product Console stopped")
}
