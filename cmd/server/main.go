package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/garmentshop/backend/internal/application/catalog"
	inventoryapp "github.com/garmentshop/backend/internal/application/inventory"
	partnerapp "github.com/garmentshop/backend/internal/application/partner"
	reportapp "github.com/garmentshop/backend/internal/application/report"
	settingsapp "github.com/garmentshop/backend/internal/application/settings"
	tradeapp "github.com/garmentshop/backend/internal/application/trade"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/infrastructure/config"
	"github.com/garmentshop/backend/internal/infrastructure/logger"
	"github.com/garmentshop/backend/internal/infrastructure/persistence"
	"github.com/garmentshop/backend/internal/interfaces/http/handler"
	"github.com/garmentshop/backend/internal/interfaces/http/middleware"
	"github.com/garmentshop/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting garment shop backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database opened", zap.String("path", cfg.Database.Path))

	// Repositories over the collection store
	store := persistence.NewCollectionStore(db)
	productRepo := persistence.NewProductRepository(store)
	optionRepo := persistence.NewOptionRepository(store)
	stockRepo := persistence.NewStockRepository(store)
	historyRepo := persistence.NewHistoryRepository(store)
	supplierRepo := persistence.NewSupplierRepository(store)
	deletedSupplierRepo := persistence.NewDeletedSupplierRepository(store)
	orderRepo := persistence.NewOrderRepository(store)
	invoiceRepo := persistence.NewInvoiceRepository(store)
	returnRepo := persistence.NewReturnRepository(store)
	settingsRepo := persistence.NewSettingsRepository(store)

	// The ledger is the single writer for stock and movement history
	ledger := inventory.NewLedger(stockRepo, historyRepo, productRepo)

	// Application services
	productService := catalogapp.NewProductService(productRepo, optionRepo, ledger)
	supplierService := partnerapp.NewSupplierService(supplierRepo, deletedSupplierRepo, productRepo)
	inventoryService := inventoryapp.NewInventoryService(stockRepo, historyRepo, ledger)
	orderService := tradeapp.NewOrderService(orderRepo, supplierRepo, ledger)
	posService := tradeapp.NewPOSService(invoiceRepo, returnRepo, productRepo, stockRepo, ledger)
	settingsService := settingsapp.NewSettingsService(settingsRepo)
	reportService := reportapp.NewReportService(productRepo, stockRepo, supplierRepo, orderRepo, invoiceRepo)

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	orderHandler := handler.NewOrderHandler(orderService)
	posHandler := handler.NewPOSHandler(posService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	reportHandler := handler.NewReportHandler(reportService)
	systemHandler := handler.NewSystemHandler(db, version)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack in order: request id, panic recovery, request
	// logging, security headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", systemHandler.Health)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(productHandler).
		Register(supplierHandler).
		Register(inventoryHandler).
		Register(orderHandler).
		Register(posHandler).
		Register(settingsHandler).
		Register(reportHandler).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
