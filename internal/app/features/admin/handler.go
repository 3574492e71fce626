// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	accountstore "github.com/pclub-iiitnr/lenshub/internal/app/store/accounts"
	applicationstore "github.com/pclub-iiitnr/lenshub/internal/app/store/applications"
	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	eventstore "github.com/pclub-iiitnr/lenshub/internal/app/store/events"
	feedbackstore "github.com/pclub-iiitnr/lenshub/internal/app/store/feedback"
	gallerystore "github.com/pclub-iiitnr/lenshub/internal/app/store/gallery"
	workshopstore "github.com/pclub-iiitnr/lenshub/internal/app/store/workshops"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/htmlsanitize"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/timeouts"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

// deletable names the collections the generic admin delete may touch.
// Accounts and identities are excluded; those have their own lifecycle.
var deletable = map[string]struct{}{
	"gallery":      {},
	"events":       {},
	"workshops":    {},
	"applications": {},
	"feedback":     {},
}

// Handler serves the admin panel's API: the dashboard aggregate,
// application review, content management, and the generic delete.
type Handler struct {
	Accounts  *accountstore.Store
	Apps      *applicationstore.Store
	Fb        *feedbackstore.Store
	Gallery   *gallerystore.Store
	Events    *eventstore.Store
	Workshops *workshopstore.Store
	Docs      *docstore.Store
	Log       *zap.Logger
}

// dashboard is the aggregate the admin landing page renders from.
type dashboard struct {
	Members      []models.Account     `json:"members"`
	Applications []models.Application `json:"applications"`
	Feedback     []models.Feedback    `json:"feedback"`
	Stats        dashboardStats       `json:"stats"`
}

type dashboardStats struct {
	Members             int `json:"members"`
	PendingApplications int `json:"pending_applications"`
	Feedback            int `json:"feedback"`
}

// Dashboard handles GET /api/admin/dashboard. The three listings load
// concurrently; any one failing fails the request.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var d dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Members, err = h.Accounts.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Applications, err = h.Apps.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Feedback, err = h.Fb.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("dashboard load failed", zap.Error(err))
		respond.Internal(w, "could not load dashboard")
		return
	}

	d.Stats.Members = len(d.Members)
	d.Stats.Feedback = len(d.Feedback)
	for _, a := range d.Applications {
		if a.Status == models.ApplicationPending {
			d.Stats.PendingApplications++
		}
	}
	respond.OK(w, d)
}

// UpdateApplicationStatus handles PATCH /api/admin/applications/{id}/status.
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid application id")
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}

	app, err := h.Apps.GetByID(r.Context(), id)
	if err != nil {
		h.Log.Error("application fetch failed", zap.Error(err))
		respond.Internal(w, "could not load application")
		return
	}
	if app == nil {
		respond.NotFound(w, "no such application")
		return
	}

	if err := h.Apps.UpdateStatus(r.Context(), id, models.ApplicationStatus(in.Status)); err != nil {
		if err == applicationstore.ErrBadStatus {
			respond.BadRequest(w, err.Error())
			return
		}
		h.Log.Error("status update failed", zap.Error(err))
		respond.Internal(w, "could not update status")
		return
	}
	respond.NoContent(w)
}

// AddGalleryItem handles POST /api/admin/gallery.
func (h *Handler) AddGalleryItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		URL          string `json:"url"`
		Category     string `json:"category"`
		Caption      string `json:"caption"`
		Photographer string `json:"photographer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return
	}
	if in.URL == "" {
		respond.BadRequest(w, "url is required")
		return
	}

	id, err := h.Gallery.Add(r.Context(), gallerystore.AddInput{
		URL:          in.URL,
		Category:     htmlsanitize.Plain(in.Category),
		Caption:      htmlsanitize.Plain(in.Caption),
		Photographer: htmlsanitize.Plain(in.Photographer),
	})
	if err != nil {
		h.Log.Error("gallery add failed", zap.Error(err))
		respond.Internal(w, "could not add gallery item")
		return
	}
	respond.Created(w, map[string]string{"id": id.Hex()})
}

// AddEvent handles POST /api/admin/events.
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeAnnouncement(w, r)
	if !ok {
		return
	}
	id, err := h.Events.Add(r.Context(), eventstore.AddInput(in))
	if err != nil {
		h.Log.Error("event add failed", zap.Error(err))
		respond.Internal(w, "could not add event")
		return
	}
	respond.Created(w, map[string]string{"id": id.Hex()})
}

// AddWorkshop handles POST /api/admin/workshops.
func (h *Handler) AddWorkshop(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeAnnouncement(w, r)
	if !ok {
		return
	}
	id, err := h.Workshops.Add(r.Context(), workshopstore.AddInput(in))
	if err != nil {
		h.Log.Error("workshop add failed", zap.Error(err))
		respond.Internal(w, "could not add workshop")
		return
	}
	respond.Created(w, map[string]string{"id": id.Hex()})
}

// announcement is the shared event/workshop input shape.
type announcement struct {
	Title       string
	Date        string
	Description string
	Image       string
}

func (h *Handler) decodeAnnouncement(w http.ResponseWriter, r *http.Request) (announcement, bool) {
	var in struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, "invalid JSON body")
		return announcement{}, false
	}
	if in.Title == "" || in.Date == "" {
		respond.BadRequest(w, "title and date are required")
		return announcement{}, false
	}
	// Descriptions may carry formatting; everything else is plain text.
	return announcement{
		Title:       htmlsanitize.Plain(in.Title),
		Date:        htmlsanitize.Plain(in.Date),
		Description: htmlsanitize.Sanitize(in.Description),
		Image:       in.Image,
	}, true
}

// DeleteDoc handles DELETE /api/admin/{collection}/{id} for the content
// collections.
func (h *Handler) DeleteDoc(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	if _, ok := deletable[collection]; !ok {
		respond.BadRequest(w, "collection cannot be deleted from")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid document id")
		return
	}
	if err := h.Docs.Delete(r.Context(), collection, id); err != nil {
		h.Log.Error("delete failed", zap.String("collection", collection), zap.Error(err))
		respond.Internal(w, "could not delete document")
		return
	}
	respond.NoContent(w)
}
