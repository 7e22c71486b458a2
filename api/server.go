// ABOUTME: Huma API server configuration and setup
// ABOUTME: Builds the chi router, middleware chain and route table for the gist search service

package api

import (
	"time"

	"gist-search-api/api/handlers"
	"gist-search-api/api/middleware"
	"gist-search-api/core/interfaces"
	"gist-search-api/infrastructure/metrics"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "Gist Search API"
	apiVersion     = "1.0.0"
	apiDescription = "Search a GitHub user's public gists with a regular expression"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// RateLimiter overrides the limiter built from RateLimit and RateWindow.
	// The caller owns it and must Close it.
	RateLimiter *middleware.RateLimiter

	// Metrics, when set, instruments every request and serves /metrics
	Metrics *metrics.Collector
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions()))

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests never count against the rate limit
	router.Use(cors.Handler(corsOptions()))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	api := humachi.New(router, humaConfig())

	return api, router
}

// NewRouter builds the complete service: middleware, /ping, both search
// endpoints and, when metrics are configured, /metrics
func NewRouter(cfg APIConfig, searchService interfaces.SearchService) chi.Router {
	humaAPI, router := NewAPIWithMiddleware(cfg)

	handlers.RegisterPing(humaAPI)
	handlers.NewSearchHandler(searchService, cfg.Logger).RegisterRoutes(humaAPI, router)

	return router
}
