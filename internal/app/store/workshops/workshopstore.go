// internal/app/store/workshops/workshopstore.go
package workshopstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

const collection = "workshops"

// Store provides access to the workshops collection.
type Store struct {
	docs *docstore.Store
	log  *zap.Logger
}

// New creates a workshop store.
func New(docs *docstore.Store, logger *zap.Logger) *Store {
	return &Store{docs: docs, log: logger}
}

// AddInput holds the fields of a new workshop announcement.
type AddInput struct {
	Title       string
	Date        string
	Description string
	Image       string
}

// Add inserts a workshop announcement.
func (s *Store) Add(ctx context.Context, in AddInput) (primitive.ObjectID, error) {
	return s.docs.Insert(ctx, collection, bson.M{
		"title":       in.Title,
		"date":        in.Date,
		"description": in.Description,
		"image":       in.Image,
	})
}

// List returns workshops ordered by date, newest first, degrading to an
// empty slice on read failure just like the event listing.
func (s *Store) List(ctx context.Context) []models.Workshop {
	workshops, err := docstore.ListAll[models.Workshop](ctx, s.docs, collection, "date")
	if err != nil {
		s.log.Warn("workshop listing failed, serving empty", zap.Error(err))
		return []models.Workshop{}
	}
	return workshops
}
