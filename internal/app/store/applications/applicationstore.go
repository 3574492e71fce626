// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pclub-iiitnr/lenshub/internal/app/store/docstore"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

const collection = "applications"

// ErrBadStatus is returned when a status outside the closed
// pending/approved/rejected set is submitted.
var ErrBadStatus = errors.New(`status must be "pending"|"approved"|"rejected"`)

// Store provides access to the applications collection.
type Store struct {
	docs *docstore.Store
}

// New creates an application store.
func New(docs *docstore.Store) *Store {
	return &Store{docs: docs}
}

// SubmitInput holds the fields a new application carries. SubmittedAt is
// the caller's clock (ISO-8601); left empty it defaults to now.
type SubmitInput struct {
	Name        string
	Email       string
	Phone       string
	Experience  string
	Equipment   string
	UserID      string
	SubmittedAt string
}

// Submit inserts a new application with status pending.
func (s *Store) Submit(ctx context.Context, in SubmitInput) (primitive.ObjectID, error) {
	if in.SubmittedAt == "" {
		in.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return s.docs.Insert(ctx, collection, bson.M{
		"name":         in.Name,
		"email":        in.Email,
		"phone":        in.Phone,
		"experience":   in.Experience,
		"equipment":    in.Equipment,
		"user_id":      in.UserID,
		"status":       models.ApplicationPending,
		"submitted_at": in.SubmittedAt,
	})
}

// List returns all applications, newest first.
func (s *Store) List(ctx context.Context) ([]models.Application, error) {
	return docstore.ListAll[models.Application](ctx, s.docs, collection, "created_at")
}

// GetByID returns the application, or (nil, nil) when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	return docstore.GetByID[models.Application](ctx, s.docs, collection, id)
}

// UpdateStatus sets the review status plus an updated_at stamp. Applying
// the same status twice leaves the stored status unchanged; only the
// stamp moves.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ApplicationStatus) error {
	if !status.IsValid() {
		return ErrBadStatus
	}
	return s.docs.Update(ctx, collection, id, bson.M{"status": status})
}
