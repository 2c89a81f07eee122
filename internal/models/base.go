package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base is embedded by every document stored in MongoDB.
type Base struct {
	ID        primitive.ObjectID `json:"id"       bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// EnsureDefaults assigns a fresh ObjectID and timestamps before insert.
func (b *Base) EnsureDefaults() {
	now := time.Now()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
