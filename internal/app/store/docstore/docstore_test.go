package docstore_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

type testDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Kind      string             `bson:"kind"`
	Views     int64              `bson:"views"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func newStore(t *testing.T) *docstore.Store {
	t.Helper()
	return docstore.New(testutil.SetupTestDB(t), zap.NewNop())
}

func TestInsert_StampsCreatedAt(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Insert(ctx, "docs", bson.M{"name": "one"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id.IsZero() {
		t.Fatal("expected assigned id")
	}

	doc, err := docstore.GetByID[testDoc](ctx, s, "docs", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc == nil {
		t.Fatal("expected document")
	}
	if doc.CreatedAt.IsZero() {
		t.Error("expected created_at stamp")
	}
}

func TestUpdate_MergesAndStamps(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Insert(ctx, "docs", bson.M{"name": "one", "kind": "a"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.Update(ctx, "docs", id, bson.M{"name": "two"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, _ := docstore.GetByID[testDoc](ctx, s, "docs", id)
	if doc.Name != "two" {
		t.Errorf("name: got %q", doc.Name)
	}
	if doc.Kind != "a" {
		t.Errorf("untouched field changed: %q", doc.Kind)
	}
	if doc.UpdatedAt == nil {
		t.Error("expected updated_at stamp")
	}
}

func TestUpdate_NeverCreates(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id := primitive.NewObjectID()
	if err := s.Update(ctx, "docs", id, bson.M{"name": "ghost"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	doc, err := docstore.GetByID[testDoc](ctx, s, "docs", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc != nil {
		t.Error("expected no document created")
	}
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, _ := s.Insert(ctx, "docs", bson.M{"name": "one"})
	if err := s.Delete(ctx, "docs", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	doc, _ := docstore.GetByID[testDoc](ctx, s, "docs", id)
	if doc != nil {
		t.Error("expected document gone")
	}

	// Deleting a missing document is not an error.
	if err := s.Delete(ctx, "docs", primitive.NewObjectID()); err != nil {
		t.Errorf("delete absent: %v", err)
	}
}

func TestListAll_NewestFirst(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.Insert(ctx, "docs", bson.M{"name": name}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	docs, err := docstore.ListAll[testDoc](ctx, s, "docs", "created_at")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d docs", len(docs))
	}
	if docs[0].Name != "c" || docs[2].Name != "a" {
		t.Errorf("order: %s %s %s", docs[0].Name, docs[1].Name, docs[2].Name)
	}
}

func TestListAll_EmptyCollection(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	docs, err := docstore.ListAll[testDoc](ctx, s, "empty", "created_at")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", docs)
	}
}

func TestListFiltered(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	for _, d := range []bson.M{
		{"name": "a", "kind": "x"},
		{"name": "b", "kind": "y"},
		{"name": "c", "kind": "x"},
	} {
		if _, err := s.Insert(ctx, "docs", d); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	docs, err := docstore.ListFiltered[testDoc](ctx, s, "docs", "kind", "x", "created_at")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	for _, d := range docs {
		if d.Kind != "x" {
			t.Errorf("unexpected kind %q", d.Kind)
		}
	}
}

func TestIncrementCounter(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	id, err := s.Insert(ctx, "docs", bson.M{"name": "one", "views": int64(0)})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	s.IncrementCounter(ctx, "docs", id, "views")
	s.IncrementCounter(ctx, "docs", id, "views")

	doc, _ := docstore.GetByID[testDoc](ctx, s, "docs", id)
	if doc.Views != 2 {
		t.Errorf("views: got %d, want 2", doc.Views)
	}
}

func TestIncrementCounter_MissingDocIsSilent(t *testing.T) {
	s := newStore(t)
	ctx := testutil.Context(t)

	// Must not panic or write anything.
	s.IncrementCounter(ctx, "docs", primitive.NewObjectID(), "views")

	docs, _ := docstore.ListAll[testDoc](ctx, s, "docs", "created_at")
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
