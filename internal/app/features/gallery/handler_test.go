package gallery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	gallerystore "github.com/pclub-iiitnr/lenshub/internal/app/store/gallery"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *gallerystore.Store) {
	t.Helper()
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	gallery := gallerystore.New(docs)
	return Routes(NewHandler(gallery, zap.NewNop())), gallery
}

func get(t *testing.T, router http.Handler, path string) (int, []map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env.Data
}

func TestList_FiltersByCategory(t *testing.T) {
	router, gallery := newTestRouter(t)
	ctx := testutil.Context(t)

	for _, cat := range []string{"landscape", "portrait"} {
		if _, err := gallery.Add(ctx, gallerystore.AddInput{URL: "u", Category: cat}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	code, items := get(t, router, "/?category=landscape")
	if code != http.StatusOK {
		t.Fatalf("got %d", code)
	}
	if len(items) != 1 || items[0]["category"] != "landscape" {
		t.Errorf("unexpected items: %v", items)
	}

	code, items = get(t, router, "/")
	if code != http.StatusOK || len(items) != 2 {
		t.Errorf("unfiltered: code %d, %d items", code, len(items))
	}
}

func TestViewAndLike_BumpCounters(t *testing.T) {
	router, gallery := newTestRouter(t)
	ctx := testutil.Context(t)

	id, err := gallery.Add(ctx, gallerystore.AddInput{URL: "u", Category: "street"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, path := range []string{"/" + id.Hex() + "/view", "/" + id.Hex() + "/like", "/" + id.Hex() + "/like"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: got %d, want 204", path, rec.Code)
		}
	}

	item, _ := gallery.GetByID(ctx, id)
	if item.Views != 1 || item.Likes != 2 {
		t.Errorf("counters: views=%d likes=%d", item.Views, item.Likes)
	}
}

func TestBump_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/not-an-id/view", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestBump_MissingItemIsStillNoContent(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/64f000000000000000000000/view", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204", rec.Code)
	}
}
