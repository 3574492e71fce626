// internal/app/features/events/handler.go
package events

import (
	"net/http"

	"go.uber.org/zap"

	eventstore "github.com/pclub-iiitnr/lenshub/internal/app/store/events"
	workshopstore "github.com/pclub-iiitnr/lenshub/internal/app/store/workshops"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/respond"
)

// Handler serves the public event and workshop listings. Both degrade to
// an empty list when the store is unreachable so the pages still render.
type Handler struct {
	Events    *eventstore.Store
	Workshops *workshopstore.Store
	Log       *zap.Logger
}

func NewHandler(events *eventstore.Store, workshops *workshopstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Events: events, Workshops: workshops, Log: logger}
}

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, h.Events.List(r.Context()))
}

// ListWorkshops handles GET /api/workshops.
func (h *Handler) ListWorkshops(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, h.Workshops.List(r.Context()))
}
