// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

const collection = "gallery"

// CategoryAll lists every item regardless of category.
const CategoryAll = "all"

// ErrBadCounterField is returned when a counter bump names a field other
// than views or likes.
var ErrBadCounterField = errors.New(`counter field must be "views" or "likes"`)

// Store provides access to the gallery collection.
type Store struct {
	docs *docstore.Store
}

// New creates a gallery store.
func New(docs *docstore.Store) *Store {
	return &Store{docs: docs}
}

// AddInput holds the fields of a new gallery item.
type AddInput struct {
	URL          string
	Category     string
	Caption      string
	Photographer string
}

// Add inserts a gallery item with both counters at zero.
func (s *Store) Add(ctx context.Context, in AddInput) (primitive.ObjectID, error) {
	return s.docs.Insert(ctx, collection, bson.M{
		"url":          in.URL,
		"category":     in.Category,
		"caption":      in.Caption,
		"photographer": in.Photographer,
		"views":        int64(0),
		"likes":        int64(0),
	})
}

// List returns gallery items newest first, filtered to the given category.
// An empty category or CategoryAll lists everything.
func (s *Store) List(ctx context.Context, category string) ([]models.GalleryItem, error) {
	if category == "" || category == CategoryAll {
		return docstore.ListAll[models.GalleryItem](ctx, s.docs, collection, "created_at")
	}
	return docstore.ListFiltered[models.GalleryItem](ctx, s.docs, collection, "category", category, "created_at")
}

// GetByID returns the item, or (nil, nil) when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryItem, error) {
	return docstore.GetByID[models.GalleryItem](ctx, s.docs, collection, id)
}

// IncrementField bumps views or likes by one, best-effort. Failures are
// logged inside the docstore and never surface.
func (s *Store) IncrementField(ctx context.Context, id primitive.ObjectID, field string) error {
	if field != "views" && field != "likes" {
		return ErrBadCounterField
	}
	s.docs.IncrementCounter(ctx, collection, id, field)
	return nil
}
