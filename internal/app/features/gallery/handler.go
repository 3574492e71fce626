// internal/app/features/gallery/handler.go
package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	gallerystore "github.com/pclub-iiitnr/lenshub/internal/app/store/gallery"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
)

// Handler serves the public gallery: listing by category and the
// best-effort view/like counters.
type Handler struct {
	Gallery *gallerystore.Store
	Log     *zap.Logger
}

func NewHandler(gallery *gallerystore.Store, logger *zap.Logger) *Handler {
	return &Handler{Gallery: gallery, Log: logger}
}

// List handles GET /api/gallery?category=…. No category, or category=all,
// lists everything.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Gallery.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.Log.Error("gallery listing failed", zap.Error(err))
		respond.Internal(w, "could not load gallery")
		return
	}
	respond.OK(w, items)
}

// View handles POST /api/gallery/{id}/view. The bump is best effort; a
// missing document is still a 204.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	h.bump(w, r, "views")
}

// Like handles POST /api/gallery/{id}/like.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.bump(w, r, "likes")
}

func (h *Handler) bump(w http.ResponseWriter, r *http.Request, field string) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid item id")
		return
	}
	if err := h.Gallery.IncrementField(r.Context(), id, field); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}
	respond.NoContent(w)
}
