package fulfillment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the fulfillment dashboard endpoint.
type Handler struct {
	service    Service
	middleware func(http.Handler) http.Handler
}

// NewHandler wires the dashboard behind the given middleware (staff-only
// access in production; pass nil to expose it unguarded in tests).
func NewHandler(service Service, middleware func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, middleware: middleware}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/fulfillment", func(r chi.Router) {
		if h.middleware != nil {
			r.Use(h.middleware)
		}
		r.Get("/orders", h.dashboard)
	})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.AssembleDashboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rows)
}
