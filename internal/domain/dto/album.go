package dto

import (
	"fotolio/internal/domain/model"
)

// AlbumCreate carries the caller-supplied fields for a new album.
type AlbumCreate struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	CoverPhotoURL string `json:"coverPhotoUrl"`
}

// AlbumPatch is the mutable field set of an album. Nil fields are left
// untouched; a present Name must be non-empty.
type AlbumPatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	CoverPhotoURL *string `json:"coverPhotoUrl"`
}

// AlbumDescriptor is the wire representation of a stored album.
type AlbumDescriptor struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CoverPhotoURL string `json:"coverPhotoUrl"`
	CreatedAt     int64  `json:"createdAt"`
}

func NewAlbumDescriptor(a *model.Album) AlbumDescriptor {
	return AlbumDescriptor{
		ID:            a.ID.Hex(),
		UserID:        a.UserID.Hex(),
		Name:          a.Name,
		Description:   a.Description,
		CoverPhotoURL: a.CoverPhotoURL,
		CreatedAt:     a.CreatedAt.Unix(),
	}
}

func NewAlbumDescriptors(albums []model.Album) []AlbumDescriptor {
	descriptors := make([]AlbumDescriptor, 0, len(albums))
	for i := range albums {
		descriptors = append(descriptors, NewAlbumDescriptor(&albums[i]))
	}

	return descriptors
}
