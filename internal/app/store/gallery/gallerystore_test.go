package gallerystore_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	gallerystore "github.com/pclub-iiitnr/lenshub/internal/app/store/gallery"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

func newStore(t *testing.T) *gallerystore.Store {
	t.Helper()
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	return gallerystore.New(docs)
}

func TestAdd_CountersStartAtZero(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Add(ctx, gallerystore.AddInput{
		URL:          "https://example.com/1.jpg",
		Category:     "landscape",
		Caption:      "Golden hour",
		Photographer: "Asha",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	item, err := s.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Views != 0 || item.Likes != 0 {
		t.Errorf("counters: views=%d likes=%d", item.Views, item.Likes)
	}
}

func TestList_FiltersByCategory(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	for _, cat := range []string{"landscape", "portrait", "landscape"} {
		if _, err := s.Add(ctx, gallerystore.AddInput{URL: "u", Category: cat}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	landscape, err := s.List(ctx, "landscape")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(landscape) != 2 {
		t.Errorf("landscape: got %d, want 2", len(landscape))
	}

	all, err := s.List(ctx, gallerystore.CategoryAll)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all: got %d, want 3", len(all))
	}

	// Empty category behaves like "all".
	blank, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("list blank: %v", err)
	}
	if len(blank) != 3 {
		t.Errorf("blank: got %d, want 3", len(blank))
	}
}

func TestIncrementField(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Add(ctx, gallerystore.AddInput{URL: "u", Category: "street"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.IncrementField(ctx, id, "views"); err != nil {
		t.Fatalf("views bump: %v", err)
	}
	if err := s.IncrementField(ctx, id, "likes"); err != nil {
		t.Fatalf("likes bump: %v", err)
	}
	if err := s.IncrementField(ctx, id, "likes"); err != nil {
		t.Fatalf("likes bump: %v", err)
	}

	item, _ := s.GetByID(ctx, id)
	if item.Views != 1 || item.Likes != 2 {
		t.Errorf("counters: views=%d likes=%d", item.Views, item.Likes)
	}
}

func TestIncrementField_RejectsUnknownField(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Add(ctx, gallerystore.AddInput{URL: "u"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.IncrementField(ctx, id, "caption"); err != gallerystore.ErrBadCounterField {
		t.Fatalf("expected ErrBadCounterField, got %v", err)
	}
}
