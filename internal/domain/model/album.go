package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Album groups photos for a single owner. Name is required and must stay
// non-empty for the album's whole life.
type Album struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	CoverPhotoURL string             `bson:"cover_photo_url"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
