package dto

import (
	"fotolio/internal/domain/model"
)

// PhotoUpload carries everything needed to persist a new photo: the metadata
// fields for the document record and the raw payload for the blob store.
type PhotoUpload struct {
	AlbumIDs    []string          `json:"albumIds"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Filename    string            `json:"filename"`
	StorageURL  string            `json:"storageUrl"`
	MimeType    string            `json:"mimeType"`
	Size        int64             `json:"size"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Data        []byte            `json:"-"`
}

// PhotoPatch is the mutable field set of a photo. Filename, storage URL,
// owner and upload time are not representable here, so an update can never
// overwrite them. Nil fields are left untouched.
type PhotoPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	AlbumIDs    []string `json:"albumIds"`
}

// Empty reports whether the patch carries no changes at all.
func (p PhotoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Tags == nil && p.AlbumIDs == nil
}

// PhotoDescriptor is the wire representation of a stored photo.
type PhotoDescriptor struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	AlbumIDs    []string          `json:"albumIds"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Filename    string            `json:"filename"`
	StorageURL  string            `json:"storageUrl"`
	MimeType    string            `json:"mimeType"`
	Size        int64             `json:"size"`
	Tags        []string          `json:"tags"`
	UploadedAt  int64             `json:"uploadedAt"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func NewPhotoDescriptor(p *model.Photo) PhotoDescriptor {
	albumIDs := make([]string, 0, len(p.AlbumIDs))
	for _, id := range p.AlbumIDs {
		albumIDs = append(albumIDs, id.Hex())
	}

	return PhotoDescriptor{
		ID:          p.ID.Hex(),
		UserID:      p.UserID.Hex(),
		AlbumIDs:    albumIDs,
		Title:       p.Title,
		Description: p.Description,
		Filename:    p.Filename,
		StorageURL:  p.StorageURL,
		MimeType:    p.MimeType,
		Size:        p.Size,
		Tags:        p.Tags,
		UploadedAt:  p.UploadedAt.Unix(),
		Metadata:    p.Metadata,
	}
}

func NewPhotoDescriptors(photos []model.Photo) []PhotoDescriptor {
	descriptors := make([]PhotoDescriptor, 0, len(photos))
	for i := range photos {
		descriptors = append(descriptors, NewPhotoDescriptor(&photos[i]))
	}

	return descriptors
}
