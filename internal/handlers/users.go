package handlers

import (
	"net/http"

	"github.com/alfagnish/users-gateway/internal/users"
	"github.com/go-chi/chi/v5"
)

// UsersHandler serves the user table and its field projections.
type UsersHandler struct {
	table *users.Table
}

// NewUsersHandler creates a new UsersHandler over the given table.
func NewUsersHandler(table *users.Table) *UsersHandler {
	return &UsersHandler{table: table}
}

// Routes registers the projection routes on the given chi router.
// /names answers POST for compatibility with existing clients, and GET so
// every read-only projection is reachable the same way.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Get("/age", h.ListAges)
	r.Post("/names", h.ListNames)
	r.Get("/names", h.ListNames)
	r.Get("/id_num", h.ListIDs)
}

// ListUsers returns every record.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.GetAll())
}

// ListAges returns [{age}, ...].
func (h *UsersHandler) ListAges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.GetAges())
}

// ListNames returns [{name}, ...].
func (h *UsersHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.GetNames())
}

// ListIDs returns [{id}, ...].
func (h *UsersHandler) ListIDs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.GetIds())
}
