package abstraction

import (
	"context"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Albums defines the album operations exposed to the presentation layer.
type Albums interface {
	Create(ctx context.Context, data dto.AlbumCreate, ownerID string) (*model.Album, error)
	Get(ctx context.Context, albumID, ownerID string) (*model.Album, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Album, error)
	Update(ctx context.Context, albumID, ownerID string, patch dto.AlbumPatch) (*model.Album, error)
	Delete(ctx context.Context, albumID, ownerID string) (bool, error)
}
