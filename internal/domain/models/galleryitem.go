// internal/domain/models/galleryitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a published photo in the club gallery.
//
// Views and Likes are best-effort counters: increments are read-then-write
// without isolation, so concurrent bumps can lose an increment. They are
// telemetry, not authoritative state.
type GalleryItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL          string             `bson:"url" json:"url"`
	Category     string             `bson:"category" json:"category"`
	Caption      string             `bson:"caption" json:"caption"`
	Photographer string             `bson:"photographer" json:"photographer"`
	Views        int64              `bson:"views" json:"views"`
	Likes        int64              `bson:"likes" json:"likes"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
