package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quiltanddrapes/fabrication-api/internal/auth"
	"github.com/quiltanddrapes/fabrication-api/internal/config"
	"github.com/quiltanddrapes/fabrication-api/internal/database"
	"github.com/quiltanddrapes/fabrication-api/internal/http/handler"
	"github.com/quiltanddrapes/fabrication-api/internal/http/middleware"
	"github.com/quiltanddrapes/fabrication-api/internal/ledger"

	_ "github.com/quiltanddrapes/fabrication-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	ledgerClient     *ledger.Client
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	authHandler      *handler.AuthHandler
	orderHandler     *handler.OrderHandler
	dashboardHandler *handler.DashboardHandler
	billingHandler   *handler.BillingHandler
	imageHandler     *handler.ImageHandler
	catalogHandler   *handler.CatalogHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	ledgerClient *ledger.Client,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	orderHandler *handler.OrderHandler,
	dashboardHandler *handler.DashboardHandler,
	billingHandler *handler.BillingHandler,
	imageHandler *handler.ImageHandler,
	catalogHandler *handler.CatalogHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		ledgerClient:     ledgerClient,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		authHandler:      authHandler,
		orderHandler:     orderHandler,
		dashboardHandler: dashboardHandler,
		billingHandler:   billingHandler,
		imageHandler:     imageHandler,
		catalogHandler:   catalogHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database readiness probe with pool stats
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Billing ledger health. Reports "disabled" when the ledger is not
	// configured, which is not a failure.
	r.Get("/health/ledger", func(w http.ResponseWriter, r *http.Request) {
		status := rt.ledgerClient.HealthCheck(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if status.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(status)
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		// The ledger is an optional dependency and never blocks readiness.
		checks["ledger"] = map[string]interface{}{
			"status": rt.ledgerClient.HealthCheck(r.Context()).Status,
		}

		w.Header().Set("Content-Type", "application/json")
		status := "healthy"
		if !allHealthy {
			status = "unhealthy"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", rt.authHandler.Login)
		r.Get("/images/gridfs/{id}", rt.imageHandler.Retrieve)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Orders
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", rt.orderHandler.List)
				r.Post("/", rt.orderHandler.Create)
				r.Get("/{id}", rt.orderHandler.GetByID)
				r.Put("/{id}", rt.orderHandler.Update)
				r.Delete("/{id}", rt.orderHandler.Delete)
			})

			// Stateless estimation for the entry form
			r.Post("/estimate", rt.orderHandler.Estimate)

			// Dashboard
			r.Get("/dashboard/kpis", rt.dashboardHandler.GetKPIs)

			// Billing
			r.Route("/billing", func(r chi.Router) {
				r.Get("/", rt.billingHandler.List)
				r.With(rt.authMiddleware.RequireAdmin).Post("/refresh", rt.billingHandler.Refresh)
			})

			// Images
			r.Post("/images", rt.imageHandler.Upload)
			r.With(rt.authMiddleware.RequireAdmin).Delete("/images/gridfs/{id}", rt.imageHandler.Delete)

			// Catalogs
			r.Get("/catalog", rt.catalogHandler.Get)
		})
	})

	return r
}
