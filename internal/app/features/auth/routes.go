// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
)

// Routes returns a subrouter for the auth endpoints; mounted under
// /api/auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
	r.With(sysauth.RequireSignedIn).Patch("/profile", h.UpdateProfile)
	return r
}
