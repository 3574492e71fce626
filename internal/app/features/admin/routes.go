// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/pclub-iiitnr/lenshub/internal/app/policy/domainpolicy"
	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
)

// Routes returns the admin subrouter, gated on the administrator
// allow-list; mounted under /api/admin.
func Routes(h *Handler, policy domainpolicy.Policy) chi.Router {
	r := chi.NewRouter()
	r.Use(sysauth.RequireAdmin(policy))

	r.Get("/dashboard", h.Dashboard)
	r.Patch("/applications/{id}/status", h.UpdateApplicationStatus)
	r.Post("/gallery", h.AddGalleryItem)
	r.Post("/events", h.AddEvent)
	r.Post("/workshops", h.AddWorkshop)
	r.Delete("/{collection}/{id}", h.DeleteDoc)
	return r
}
