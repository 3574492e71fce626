// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the review state of a membership application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsValid reports whether s is one of the three allowed statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// Application is a membership application submitted through the site.
// Applications are immutable after submission except for the status
// field, which only administrators change.
type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Experience string             `bson:"experience" json:"experience"`
	Equipment  string             `bson:"equipment" json:"equipment"`

	// UserID is the UID of the account that submitted the application.
	UserID string            `bson:"user_id" json:"user_id"`
	Status ApplicationStatus `bson:"status" json:"status"`

	// SubmittedAt is the ISO-8601 instant from the caller's clock;
	// CreatedAt is the store's stamp.
	SubmittedAt string     `bson:"submitted_at" json:"submitted_at"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
