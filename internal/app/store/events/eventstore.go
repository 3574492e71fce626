// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

const collection = "events"

// Store provides access to the events collection.
type Store struct {
	docs *docstore.Store
	log  *zap.Logger
}

// New creates an event store.
func New(docs *docstore.Store, logger *zap.Logger) *Store {
	return &Store{docs: docs, log: logger}
}

// AddInput holds the fields of a new event announcement.
type AddInput struct {
	Title       string
	Date        string
	Description string
	Image       string
}

// Add inserts an event announcement.
func (s *Store) Add(ctx context.Context, in AddInput) (primitive.ObjectID, error) {
	return s.docs.Insert(ctx, collection, bson.M{
		"title":       in.Title,
		"date":        in.Date,
		"description": in.Description,
		"image":       in.Image,
	})
}

// List returns events ordered by date, newest first. A read failure
// degrades to an empty slice: the collection simply may not exist yet,
// and the public page treats "no events" and "cannot load events" the
// same way.
func (s *Store) List(ctx context.Context) []models.Event {
	events, err := docstore.ListAll[models.Event](ctx, s.docs, collection, "date")
	if err != nil {
		s.log.Warn("event listing failed, serving empty", zap.Error(err))
		return []models.Event{}
	}
	return events
}
