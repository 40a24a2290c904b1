package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-console/internal/platform/config"
	"github.com/ridloal/product-console/internal/platform/database"
	"github.com/ridloal/product-console/internal/platform/logger"
	productAPI "github.com/ridloal/product-console/internal/product/api"
	productRepo "github.com/ridloal/product-console/internal/product/repository"
	productService "github.com/ridloal/product-console/internal/product/service"
)

// Reference Product API used for local development of the console.
func main() {
	// Load Config
	config.LoadDotEnv()
	dbCfg := config.LoadProductDBConfig()
	serverCfg := config.LoadServerConfig("8082")

	logger.Info("Starting Product Service...")

	// Setup Database
	db, err := database.Connect(dbCfg.DSN)
	if err != nil {
		logger.Error("Failed to connect to database for Product Service", err)
		return
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = productRepo.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		logger.Error("Failed to prepare products schema", err)
		return
	}

	// Setup Dependencies
	prodRepository := productRepo.NewPostgresProductRepository(db)
	prodService := productService.NewProductService(prodRepository)
	productHandler := productAPI.NewProductHandler(prodService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiGroup := router.Group("/api")
	productHandler.RegisterRoutes(apiGroup)

	logger.Info("Product Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Product Service server", err)
	}
}
