package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User owns albums and photos. The password hash never leaves the
// application layer; DTOs strip it before records are handed upward.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
