// internal/app/features/gallery/routes.go
package gallery

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the gallery; mounted under /api/gallery.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/{id}/view", h.View)
	r.Post("/{id}/like", h.Like)
	return r
}
