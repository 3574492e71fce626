package eventstore_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	eventstore "github.com/pclub-iiitnr/lenshub/internal/app/store/events"
	"github.com/pclub-iiitnr/lenshub/internal/testutil"
)

func TestAddAndList_OrderedByDate(t *testing.T) {
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	s := eventstore.New(docs, zap.NewNop())
	ctx := testutil.Context(t)

	for _, e := range []eventstore.AddInput{
		{Title: "Old walk", Date: "2026-01-10"},
		{Title: "New walk", Date: "2026-03-05"},
	} {
		if _, err := s.Add(ctx, e); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	events := s.List(ctx)
	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Title != "New walk" {
		t.Errorf("expected newest date first, got %q", events[0].Title)
	}
}

func TestList_EmptyCollection(t *testing.T) {
	docs := docstore.New(testutil.SetupTestDB(t), zap.NewNop())
	s := eventstore.New(docs, zap.NewNop())

	events := s.List(testutil.Context(t))
	if events == nil || len(events) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", events)
	}
}
