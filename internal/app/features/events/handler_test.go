package events

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	eventstore "github.com/pclub-iiitnr/lenshub/internal/app/store/events"
	workshopstore "github.com/pclub-iiitnr/lenshub/internal/app/store/workshops"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *eventstore.Store, *workshopstore.Store) {
	t.Helper()
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	events := eventstore.New(docs, zap.NewNop())
	workshops := workshopstore.New(docs, zap.NewNop())
	return Routes(NewHandler(events, workshops, zap.NewNop())), events, workshops
}

func get(t *testing.T, router http.Handler, path string) []map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: got %d", path, rec.Code)
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestListEvents(t *testing.T) {
	router, events, _ := newTestRouter(t)
	ctx := testutil.Context(t)

	if _, err := events.Add(ctx, eventstore.AddInput{Title: "Photo walk", Date: "2026-09-12"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := get(t, router, "/events")
	if len(items) != 1 || items[0]["title"] != "Photo walk" {
		t.Errorf("unexpected events: %v", items)
	}
}

func TestListWorkshops(t *testing.T) {
	router, _, workshops := newTestRouter(t)
	ctx := testutil.Context(t)

	if _, err := workshops.Add(ctx, workshopstore.AddInput{Title: "Lightroom basics", Date: "2026-10-01"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := get(t, router, "/workshops")
	if len(items) != 1 || items[0]["title"] != "Lightroom basics" {
		t.Errorf("unexpected workshops: %v", items)
	}
}

func TestListings_EmptyAreArraysNotNull(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/events", "/workshops"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if string(env.Data) != "[]" {
			t.Errorf("%s: data is %s, want []", path, env.Data)
		}
	}
}
