package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
)

func primitiveHex() string { return primitive.NewObjectID().Hex() }

// WithChiURLParam adds a chi URL parameter to the request context. Use in
// handler tests that call handlers directly instead of through a router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MemberUser returns a session user from the allowed domain.
func MemberUser() auth.SessionUser {
	return auth.SessionUser{
		UID:   primitiveHex(),
		Name:  "Test Member",
		Email: "member@iiitnr.edu.in",
	}
}

// AdminUser returns a session user whose email belongs on the admin
// allow-list used by test policies.
func AdminUser() auth.SessionUser {
	return auth.SessionUser{
		UID:   primitiveHex(),
		Name:  "Test Admin",
		Email: "admin@iiitnr.edu.in",
	}
}

// WithUser injects u into the request context the way the session
// middleware would.
func WithUser(r *http.Request, u auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, &u)
}
