package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/docs"
	"github.com/quiltanddrapes/fabrication-api/internal/auth"
	"github.com/quiltanddrapes/fabrication-api/internal/billing"
	"github.com/quiltanddrapes/fabrication-api/internal/config"
	"github.com/quiltanddrapes/fabrication-api/internal/database"
	"github.com/quiltanddrapes/fabrication-api/internal/http/handler"
	"github.com/quiltanddrapes/fabrication-api/internal/http/middleware"
	"github.com/quiltanddrapes/fabrication-api/internal/http/router"
	"github.com/quiltanddrapes/fabrication-api/internal/jobs"
	"github.com/quiltanddrapes/fabrication-api/internal/ledger"
	"github.com/quiltanddrapes/fabrication-api/internal/logger"
	"github.com/quiltanddrapes/fabrication-api/internal/repository"
	"github.com/quiltanddrapes/fabrication-api/internal/service"
	"github.com/quiltanddrapes/fabrication-api/internal/storage"
)

// @title Quilt & Drapes Fabrication API
// @version 1.0
// @description Business operations API for curtain and blind fabrication: orders, fabric estimation, billing reconciliation

// @contact.name API Support
// @contact.email support@quiltanddrapes.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "fabrication-staging.quiltanddrapes.in"
	case "production":
		docs.SwaggerInfo.Host = "api.quiltanddrapes.in"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Schema migrations run via cmd/migrate in deployed environments
	if cfg.App.Environment == "development" || cfg.App.Environment == "local" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Auto-migration completed")
	}

	// Image storage
	imageStore, err := storage.NewImageStore(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Billing ledger connection (optional, read-only). The app runs
	// without it; the billing page just stays empty.
	ledgerClient, err := ledger.NewClient(&cfg.Ledger, log)
	if err != nil {
		log.Warn("Billing ledger connection failed, continuing without it", zap.Error(err))
		ledgerClient = nil
	}

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Auth
	tokenIssuer, err := auth.NewTokenIssuer(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Services
	retrievalBase := cfg.App.ImageRetrievalBase()
	orderService := service.NewOrderService(orderRepo, retrievalBase, log)
	dashboardService := service.NewDashboardService(orderRepo, log)
	billingService := service.NewBillingService(ledgerClient, billing.NewReconciler(log), log)
	authService := service.NewAuthService(userRepo, tokenIssuer, log)
	imageService := service.NewImageService(imageStore, retrievalBase, log)

	if err := seedBootstrapUser(ctx, authService, log); err != nil {
		return err
	}

	// Middleware
	authMiddleware := auth.NewMiddleware(tokenIssuer, cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	billingHandler := handler.NewBillingHandler(billingService, log)
	imageHandler := handler.NewImageHandler(imageService, cfg.Storage.MaxUploadSizeMB, log)
	catalogHandler := handler.NewCatalogHandler()

	rt := router.NewRouter(
		cfg,
		log,
		db,
		ledgerClient,
		authMiddleware,
		rateLimiter,
		authHandler,
		orderHandler,
		dashboardHandler,
		billingHandler,
		imageHandler,
		catalogHandler,
	)

	// Background billing refresh
	var scheduler *jobs.Scheduler
	if cfg.Jobs.LedgerRefreshEnabled && ledgerClient.IsEnabled() {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterLedgerRefreshJob(
			scheduler,
			billingService,
			log,
			cfg.Jobs.LedgerRefreshSchedule,
			true, // warm the snapshot on startup
		); err != nil {
			log.Error("Failed to register ledger refresh job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started",
				zap.Strings("jobs", scheduler.GetJobNames()),
				zap.String("cron_expr", cfg.Jobs.LedgerRefreshSchedule),
			)
		}
	} else {
		log.Info("Ledger refresh job disabled",
			zap.Bool("job_enabled", cfg.Jobs.LedgerRefreshEnabled),
			zap.Bool("ledger_available", ledgerClient.IsEnabled()),
		)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if err := ledgerClient.Close(); err != nil {
			log.Warn("Error closing ledger connection", zap.Error(err))
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// seedBootstrapUser provisions the initial admin account when the
// bootstrap credentials are set. Safe to run on every start, the
// account is upserted.
func seedBootstrapUser(ctx context.Context, authService *service.AuthService, log *zap.Logger) error {
	username := os.Getenv("BOOTSTRAP_ADMIN_USERNAME")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Info("No bootstrap admin credentials set, skipping account seeding")
		return nil
	}

	if err := authService.SeedUser(ctx, username, password, "Administrator", auth.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	return nil
}
