// internal/app/features/applications/routes.go
package applications

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
)

// Routes returns a subrouter for application submission; mounted under
// /api/applications.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.With(sysauth.RequireSignedIn).Post("/", h.Submit)
	return r
}
