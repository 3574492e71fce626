// internal/app/features/auth/handler.go
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/gateway/authgw"
	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/htmlsanitize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/normalize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
)

// Handler serves the /api/auth endpoints: sign-in, registration, sign-out,
// the current user, and profile updates.
type Handler struct {
	GW       *authgw.Gateway
	Sessions *sysauth.SessionManager
	Log      *zap.Logger
}

func NewHandler(gw *authgw.Gateway, sessions *sysauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{GW: gw, Sessions: sessions, Log: logger}
}

// userPayload is the identity shape the page scripts consume.
type userPayload struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoURL,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

func toPayload(id *identity.Identity) userPayload {
	return userPayload{
		UID:           id.UID,
		Email:         id.Email,
		DisplayName:   id.DisplayName,
		PhotoURL:      id.PhotoURL,
		EmailVerified: id.EmailVerified,
	}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	id, err := h.GW.SignIn(r.Context(), normalize.Email(in.Email), in.Password)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	h.establish(w, r, id)
	respond.OK(w, toPayload(id))
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	name := normalize.Name(htmlsanitize.Plain(in.DisplayName))
	id, err := h.GW.Register(r.Context(), normalize.Email(in.Email), in.Password, name)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	h.establish(w, r, id)
	respond.Created(w, toPayload(id))
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.GW.SignOut(r.Context()); err != nil {
		respond.Internal(w, err.Error())
		return
	}
	if err := h.Sessions.Clear(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
		respond.Internal(w, "failed to sign out")
		return
	}
	respond.NoContent(w)
}

// Me handles GET /api/auth/me. The data field carries the account
// document, or null when the signed-in identity has no profile yet.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "please sign in first")
		return
	}

	acct, err := h.GW.FetchProfile(r.Context(), u.UID)
	if err != nil {
		h.Log.Error("profile fetch failed", zap.String("uid", u.UID), zap.Error(err))
		respond.Internal(w, "could not load profile")
		return
	}
	respond.OK(w, acct)
}

// UpdateProfile handles PATCH /api/auth/profile. Absent fields are left
// untouched.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "please sign in first")
		return
	}

	var in struct {
		DisplayName *string `json:"displayName"`
		PhotoURL    *string `json:"photoURL"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}
	if in.DisplayName != nil {
		clean := normalize.Name(htmlsanitize.Plain(*in.DisplayName))
		in.DisplayName = &clean
	}

	id, err := h.GW.UpdateProfile(r.Context(), u.UID, identity.ProfileUpdate{
		DisplayName: in.DisplayName,
		PhotoURL:    in.PhotoURL,
	})
	if err != nil {
		respond.Internal(w, err.Error())
		return
	}

	// Keep the session cookie's cached name current.
	h.establish(w, r, id)
	respond.OK(w, toPayload(id))
}

// establish refreshes the session cookie and stamps the account's
// last-login time. The stamp is best effort; failure is logged and never
// shown.
func (h *Handler) establish(w http.ResponseWriter, r *http.Request, id *identity.Identity) {
	if err := h.Sessions.Establish(w, r, sysauth.SessionUser{
		UID:   id.UID,
		Name:  id.DisplayName,
		Email: id.Email,
	}); err != nil {
		h.Log.Error("session establish failed", zap.String("uid", id.UID), zap.Error(err))
	}
	if err := h.GW.RecordLogin(r.Context(), id.UID); err != nil {
		h.Log.Warn("last-login stamp failed", zap.String("uid", id.UID), zap.Error(err))
	}
}

func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	var dre *authgw.DomainRejectedError
	if errors.As(err, &dre) {
		respond.Forbidden(w, dre.Error())
		return
	}

	var ae *authgw.AuthError
	if errors.As(err, &ae) {
		switch ae.Code {
		case identity.CodeUserNotFound, identity.CodeWrongPassword:
			respond.Unauthorized(w, ae.Message)
		case identity.CodeInvalidEmail, identity.CodeEmailInUse, identity.CodeWeakPassword:
			respond.BadRequest(w, ae.Message)
		default:
			respond.Internal(w, ae.Message)
		}
		return
	}

	if errors.Is(err, authgw.ErrProfileIncomplete) {
		respond.Internal(w, authgw.ErrProfileIncomplete.Error())
		return
	}

	h.Log.Error("auth request failed", zap.Error(err))
	respond.Internal(w, "authentication failed")
}
