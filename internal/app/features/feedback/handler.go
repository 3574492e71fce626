// internal/app/features/feedback/handler.go
package feedback

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	feedbackstore "github.com/pclub-iiitnr/lenshub/internal/app/store/feedback"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/htmlsanitize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/normalize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
)

// Handler serves the public feedback form.
type Handler struct {
	Fb  *feedbackstore.Store
	Log *zap.Logger
}

func NewHandler(fb *feedbackstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Fb: fb, Log: logger}
}

// Submit handles POST /api/feedback. Open to anonymous visitors.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	msg := htmlsanitize.Plain(in.Message)
	if msg == "" {
		respond.BadRequest(w, "message is required")
		return
	}

	id, err := h.Fb.Submit(r.Context(), feedbackstore.SubmitInput{
		Name:    htmlsanitize.Plain(in.Name),
		Email:   normalize.Email(in.Email),
		Message: msg,
	})
	if err != nil {
		h.Log.Error("feedback submit failed", zap.Error(err))
		respond.Internal(w, "could not submit feedback")
		return
	}

	respond.Created(w, map[string]string{"id": id.Hex()})
}
