package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echojwt "github.com/labstack/echo-jwt/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gigsters-app/gigsters/docs"
	"github.com/gigsters-app/gigsters/internal/caching"
	"github.com/gigsters-app/gigsters/internal/config"
	"github.com/gigsters-app/gigsters/internal/handlers"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/middleware"
	"github.com/gigsters-app/gigsters/internal/repositories"
	"github.com/gigsters-app/gigsters/internal/services"
	"github.com/gigsters-app/gigsters/pkg/database"
)

const version = "1.0.0"

// @title Gigsters Documents API
// @version 1.0
// @description Invoice and quotation numbering with immutable issuer and client snapshots
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token as *Bearer &lt;jwt&gt;*

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	db := database.New(pool, appLogger, cfg.Database.TxTimeout)
	if cfg.Database.Migrate {
		if err := database.Migrate(cfg.Database.URL, appLogger); err != nil {
			appLogger.Fatalw("failed to apply migrations", "error", err)
		}
	}

	var cacheSvc caching.CacheService
	if cfg.Cache.RedisEnabled() {
		cacheSvc = caching.NewRedisCacheService(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, appLogger)
	} else {
		cacheSvc = caching.NewMemoryCacheService(cfg.Cache.FormatTTL)
	}

	// export and the storage readiness probe are off without an endpoint
	var storageSvc services.StorageService
	if cfg.Storage.StorageEnabled() {
		minioSvc, err := services.NewMinioService(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err != nil {
			appLogger.Fatalw("failed to initialize object storage", "error", err)
		}
		if err := minioSvc.EnsureBucketExists(ctx); err != nil {
			appLogger.Fatalw("failed to prepare export bucket", "bucket", cfg.Storage.Bucket, "error", err)
		}
		storageSvc = minioSvc
	}

	profileRepo := repositories.NewBusinessProfileRepo(db)
	params := services.ServiceParams{
		Logger:           appLogger,
		DB:               db,
		Cache:            cacheSvc,
		FormatTTL:        cfg.Cache.FormatTTL,
		ProfileRepo:      profileRepo,
		ClientRepo:       repositories.NewClientRepo(db),
		BusinessItemRepo: repositories.NewBusinessItemRepo(db),
		NumberFormatRepo: repositories.NewNumberFormatRepo(db),
		CounterRepo:      repositories.NewCounterRepo(db),
		DocumentRepo:     repositories.NewDocumentRepo(db),
		SnapshotRepo:     repositories.NewSnapshotRepo(db),
		LineItemRepo:     repositories.NewLineItemRepo(db),
	}

	formatSvc := services.NewNumberFormatService(params)
	documentSvc := services.NewDocumentService(params, services.NewNumberingService(params, formatSvc), services.NewLineItemResolver(params))
	exportSvc := services.NewExportService(documentSvc, storageSvc, appLogger)

	documentHandlers := handlers.NewDocumentHandlers(documentSvc, exportSvc, appLogger)
	formatHandlers := handlers.NewNumberFormatHandlers(formatSvc)
	healthHandlers := handlers.NewHealthHandlers(db, cacheSvc, storageSvc, version, appLogger)

	jwtConfig, stopJWKS, err := middleware.JWTConfig(cfg.Auth.JWTSecret, cfg.Auth.JWKSURL, appLogger)
	if err != nil {
		appLogger.Fatalw("failed to configure authentication", "error", err)
	}
	defer stopJWKS()

	e := echo.New()
	e.HideBanner = true

	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")
	v1.Use(versionMiddleware.VersionHeader("v1"))

	guard := middleware.NewProfileGuard(profileRepo, appLogger)
	profile := v1.Group("/profiles/:"+middleware.ProfileIDParam,
		echojwt.WithConfig(jwtConfig),
		middleware.Principal(),
		guard.RequireAccess(),
	)

	profile.GET("/invoices", documentHandlers.ListInvoices)
	profile.POST("/invoices", documentHandlers.CreateInvoice)
	profile.GET("/invoices/:id", documentHandlers.GetInvoice)
	profile.PATCH("/invoices/:id", documentHandlers.UpdateInvoice)
	profile.PUT("/invoices/:id/status", documentHandlers.UpdateInvoiceStatus)
	profile.DELETE("/invoices/:id", documentHandlers.DeleteInvoice)
	profile.POST("/invoices/:id/export", documentHandlers.ExportInvoice)

	profile.GET("/quotations", documentHandlers.ListQuotations)
	profile.POST("/quotations", documentHandlers.CreateQuotation)
	profile.GET("/quotations/:id", documentHandlers.GetQuotation)
	profile.PATCH("/quotations/:id", documentHandlers.UpdateQuotation)
	profile.PUT("/quotations/:id/status", documentHandlers.UpdateQuotationStatus)
	profile.DELETE("/quotations/:id", documentHandlers.DeleteQuotation)
	profile.POST("/quotations/:id/export", documentHandlers.ExportQuotation)
	profile.POST("/quotations/:id/convert", documentHandlers.ConvertQuotation)

	profile.GET("/number-formats/:kind", formatHandlers.GetNumberFormat)
	profile.POST("/number-formats/:kind", formatHandlers.CreateNumberFormat)
	profile.PATCH("/number-formats/:kind", formatHandlers.UpdateNumberFormat)

	go func() {
		appLogger.Infow("server starting", "version", version, "address", cfg.Server.Address,
			"cache", cacheBackend(cfg), "export_enabled", storageSvc != nil)
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("graceful shutdown failed", "error", err)
	}
	appLogger.Infow("server stopped")
}

func cacheBackend(cfg *config.Configuration) string {
	if cfg.Cache.RedisEnabled() {
		return "redis"
	}
	return "memory"
}
