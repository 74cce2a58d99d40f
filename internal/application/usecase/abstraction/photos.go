package abstraction

import (
	"context"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Photos defines the photo operations exposed to the presentation layer.
type Photos interface {
	Upload(ctx context.Context, data dto.PhotoUpload, ownerID string) (*model.Photo, error)
	Get(ctx context.Context, photoID string) (*model.Photo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Photo, error)
	ListByAlbum(ctx context.Context, albumID string) ([]model.Photo, error)
	SearchByTags(ctx context.Context, tags []string) ([]model.Photo, error)
	Update(ctx context.Context, photoID, ownerID string, patch dto.PhotoPatch) (*model.Photo, error)
	Delete(ctx context.Context, photoID, ownerID string) (bool, error)
}
