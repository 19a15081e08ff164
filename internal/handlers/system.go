package handlers

import (
	"net/http"
	"time"

	"github.com/alfagnish/users-gateway/internal/users"
	"github.com/go-chi/chi/v5"
)

// SystemHandler provides operational endpoints that sit beside the
// projection routes.
type SystemHandler struct {
	table   *users.Table
	metrics http.Handler
	started time.Time
}

// NewSystemHandler creates a new SystemHandler. metrics may be nil, in
// which case /metrics is not registered.
func NewSystemHandler(table *users.Table, metrics http.Handler) *SystemHandler {
	return &SystemHandler{
		table:   table,
		metrics: metrics,
		started: time.Now(),
	}
}

// Routes registers all system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}
}

// Health reports liveness and the size of the served table.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": h.table.Len(),
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
