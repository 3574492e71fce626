// internal/app/store/feedback/feedbackstore.go
package feedbackstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

const collection = "feedback"

// Store provides access to the feedback collection. Feedback is
// write-once; only the admin dashboard reads it back.
type Store struct {
	docs *docstore.Store
}

// New creates a feedback store.
func New(docs *docstore.Store) *Store {
	return &Store{docs: docs}
}

// SubmitInput holds the fields a feedback message carries.
type SubmitInput struct {
	Name        string
	Email       string
	Message     string
	SubmittedAt string
}

// Submit inserts a feedback message. SubmittedAt defaults to now when the
// caller did not supply one.
func (s *Store) Submit(ctx context.Context, in SubmitInput) (primitive.ObjectID, error) {
	if in.SubmittedAt == "" {
		in.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.docs.Insert(ctx, collection, bson.M{
		"name":         in.Name,
		"email":        in.Email,
		"message":      in.Message,
		"submitted_at": in.SubmittedAt,
	})
}

// List returns all feedback, newest first.
func (s *Store) List(ctx context.Context) ([]models.Feedback, error) {
	return docstore.ListAll[models.Feedback](ctx, s.docs, collection, "created_at")
}
