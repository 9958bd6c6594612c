package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
	"github.com/iho/cashflow/internal/infrastructure/auth"
	"github.com/iho/cashflow/internal/usecase"
)

// EntriesRouterConfig holds dependencies for the entries service router.
type EntriesRouterConfig struct {
	EntryHandler     *handler.EntryHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	Logger           zerolog.Logger
}

// NewEntriesRouter creates the router for the entries service.
func NewEntriesRouter(cfg EntriesRouterConfig) http.Handler {
	r := newBaseRouter(cfg.HealthHandler, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.JWTManager))

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
		})
	})

	return r
}

// ConsolidationRouterConfig holds dependencies for the consolidation service router.
type ConsolidationRouterConfig struct {
	AggregateHandler *handler.AggregateHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	Logger           zerolog.Logger
}

// NewConsolidationRouter creates the router for the consolidation service.
func NewConsolidationRouter(cfg ConsolidationRouterConfig) http.Handler {
	r := newBaseRouter(cfg.HealthHandler, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.JWTManager))

		r.Get("/consolidation/{date}", cfg.AggregateHandler.GetDaily)
	})

	return r
}

// SSORouterConfig holds dependencies for the SSO service router.
type SSORouterConfig struct {
	AuthHandler   *handler.AuthHandler
	HealthHandler *handler.HealthHandler
	JWTManager    *auth.JWTManager
	Logger        zerolog.Logger
}

// NewSSORouter creates the router for the SSO service.
func NewSSORouter(cfg SSORouterConfig) http.Handler {
	r := newBaseRouter(cfg.HealthHandler, cfg.Logger)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			r.Get("/me", cfg.AuthHandler.GetCurrentUser)
		})
	})

	return r
}

func newBaseRouter(health *handler.HealthHandler, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", health.Liveness)
	r.Get("/ready", health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
