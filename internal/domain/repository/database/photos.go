package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Photos is the persistence contract for photo metadata records.
//
// Update and Delete are ownership-scoped. Update applies only the mutable
// field set carried by dto.PhotoPatch; filename, storage URL, owner and
// upload time cannot be overwritten through it. DetachAlbum removes a deleted
// album's id from every photo that carried it.
type Photos interface {
	Create(ctx context.Context, photo *model.Photo) (*model.Photo, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Photo, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Photo, error)
	ListByAlbum(ctx context.Context, albumID primitive.ObjectID) ([]model.Photo, error)
	ListByTags(ctx context.Context, tags []string) ([]model.Photo, error)
	Update(ctx context.Context, id, ownerID primitive.ObjectID, patch dto.PhotoPatch) (*model.Photo, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error)
	DetachAlbum(ctx context.Context, albumID primitive.ObjectID) (int64, error)
}
