package server

import (
	"net/http"

	"github.com/alfagnish/users-gateway/internal/config"
	"github.com/alfagnish/users-gateway/internal/handlers"
	"github.com/alfagnish/users-gateway/internal/metrics"
	"github.com/alfagnish/users-gateway/internal/middleware"
	"github.com/alfagnish/users-gateway/internal/users"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// New creates a fully-configured chi router with all routes, middleware,
// and handlers wired together. m may be nil to run without metrics.
func New(cfg *config.Config, table *users.Table, logger *zap.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestLogger(logger))
	var metricsHandler http.Handler
	if m != nil {
		r.Use(m.Middleware)
		metricsHandler = m.Handler()
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// ── Handlers ────────────────────────────────────────────
	handlers.NewUsersHandler(table).Routes(r)
	handlers.NewSystemHandler(table, metricsHandler).Routes(r)
	handlers.NewWSHandler(table, logger).Routes(r)

	return r
}
