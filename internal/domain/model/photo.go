package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is the metadata record for one uploaded asset. The raw bytes live in
// the blob store at StorageURL and are never embedded in the document; the
// record and the blob must not exist without each other outside the
// upload/delete critical sections.
//
// AlbumIDs is membership, not a deduplicated set: this layer passes duplicate
// entries through unchanged.
type Photo struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	UserID      primitive.ObjectID   `bson:"user_id"`
	AlbumIDs    []primitive.ObjectID `bson:"album_ids"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Filename    string               `bson:"filename"`
	StorageURL  string               `bson:"storage_url"`
	MimeType    string               `bson:"mime_type"`
	Size        int64                `bson:"size"`
	Tags        []string             `bson:"tags"`
	UploadedAt  time.Time            `bson:"uploaded_at"`
	Metadata    map[string]string    `bson:"metadata,omitempty"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// InAlbum reports whether the photo is a member of the given album.
func (p *Photo) InAlbum(albumID primitive.ObjectID) bool {
	for _, id := range p.AlbumIDs {
		if id == albumID {
			return true
		}
	}

	return false
}
