// Package identifier validates the opaque 24-hex-character identifiers
// assigned by the document store to users, albums and photos.
package identifier

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid reports whether the candidate is a well-formed store identifier.
// Malformed values must be rejected before any store round-trip.
func Valid(candidate string) bool {
	return primitive.IsValidObjectID(candidate)
}

// Parse converts a well-formed candidate into a store ObjectID.
func Parse(candidate string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(candidate)
}
