package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Albums is the persistence contract for album records. Update and Delete are
// ownership-scoped: their store filter carries both the album id and the
// owner id, so a non-owner's mutation matches nothing.
type Albums interface {
	Create(ctx context.Context, album *model.Album) (*model.Album, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Album, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Album, error)
	Update(ctx context.Context, id, ownerID primitive.ObjectID, patch dto.AlbumPatch) (*model.Album, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error)
}
