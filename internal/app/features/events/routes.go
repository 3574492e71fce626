// internal/app/features/events/routes.go
package events

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter carrying both listings; mounted under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/events", h.ListEvents)
	r.Get("/workshops", h.ListWorkshops)
	return r
}
