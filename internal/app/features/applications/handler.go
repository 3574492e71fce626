// internal/app/features/applications/handler.go
package applications

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	applicationstore "github.com/pclub-iiitnr/lenshub/internal/app/store/applications"
	sysauth "github.com/pclub-iiitnr/lenshub/internal/app/system/auth"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/htmlsanitize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/normalize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
)

// Handler serves membership application submission. Review happens through
// the admin endpoints.
type Handler struct {
	Apps *applicationstore.Store
	Log  *zap.Logger
}

func NewHandler(apps *applicationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Apps: apps, Log: logger}
}

// Submit handles POST /api/applications. The route requires a signed-in
// user; the application is tied to their UID.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "please sign in first")
		return
	}

	var in struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Experience string `json:"experience"`
		Equipment  string `json:"equipment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	name := htmlsanitize.Plain(in.Name)
	email := normalize.Email(in.Email)
	if name == "" || email == "" {
		respond.BadRequest(w, "name and email are required")
		return
	}

	id, err := h.Apps.Submit(r.Context(), applicationstore.SubmitInput{
		Name:       name,
		Email:      email,
		Phone:      htmlsanitize.Plain(in.Phone),
		Experience: htmlsanitize.Plain(in.Experience),
		Equipment:  htmlsanitize.Plain(in.Equipment),
		UserID:     u.UID,
	})
	if err != nil {
		h.Log.Error("application submit failed", zap.String("uid", u.UID), zap.Error(err))
		respond.Internal(w, "could not submit application")
		return
	}

	respond.Created(w, map[string]string{"id": id.Hex()})
}
