package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
	"fotolio/pkg/identifier"
	"fotolio/pkg/logger"
)

type PhotoRepository struct {
	db  *Database
	log *logger.Logger
}

func NewPhotoRepository(db *Database, log *logger.Logger) *PhotoRepository {
	return &PhotoRepository{
		db:  db,
		log: log,
	}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	res, err := coll.InsertOne(ctx, photo)
	if err != nil {
		r.log.Error("failed to insert photo", "owner", photo.UserID.Hex(), "err", err)

		return nil, fmt.Errorf("inserting photo: %w", err)
	}

	created := *photo
	created.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Info("photo created", "id", created.ID.Hex(), "owner", created.UserID.Hex())

	return &created, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	var photo model.Photo
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to retrieve photo", "id", id.Hex(), "err", err)

		return nil, fmt.Errorf("retrieving photo: %w", err)
	}

	return &photo, nil
}

func (r *PhotoRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Photo, error) {
	return r.list(ctx, bson.M{"user_id": ownerID})
}

func (r *PhotoRepository) ListByAlbum(ctx context.Context, albumID primitive.ObjectID) ([]model.Photo, error) {
	return r.list(ctx, bson.M{"album_ids": albumID})
}

// ListByTags matches photos carrying at least one of the given tags.
func (r *PhotoRepository) ListByTags(ctx context.Context, tags []string) ([]model.Photo, error) {
	return r.list(ctx, bson.M{"tags": bson.M{"$in": tags}})
}

func (r *PhotoRepository) list(ctx context.Context, filter bson.M) ([]model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		r.log.Error("failed to list photos", "err", err)

		return nil, fmt.Errorf("listing photos: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []model.Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		r.log.Error("failed to decode photos", "err", err)

		return nil, fmt.Errorf("decoding photos: %w", err)
	}

	return photos, nil
}

// Update applies the patch to the photo only when it is owned by ownerID.
// The patch type carries the mutable fields only, so filename, storage URL,
// owner and upload time can never be overwritten here.
func (r *PhotoRepository) Update(ctx context.Context, id, ownerID primitive.ObjectID,
	patch dto.PhotoPatch,
) (*model.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	if patch.AlbumIDs != nil {
		albumIDs := make([]primitive.ObjectID, 0, len(patch.AlbumIDs))
		for _, raw := range patch.AlbumIDs {
			albumID, err := identifier.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("malformed album id %q: %w", raw, err)
			}
			albumIDs = append(albumIDs, albumID)
		}
		set["album_ids"] = albumIDs
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	var updated model.Photo
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to update photo", "id", id.Hex(), "owner", ownerID.Hex(), "err", err)

		return nil, fmt.Errorf("updating photo: %w", err)
	}

	return &updated, nil
}

// Delete removes the metadata record only when it is owned by ownerID. It
// reports true iff exactly one record was removed.
func (r *PhotoRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		r.log.Error("failed to delete photo", "id", id.Hex(), "owner", ownerID.Hex(), "err", err)

		return false, fmt.Errorf("deleting photo: %w", err)
	}

	return res.DeletedCount == 1, nil
}

// DetachAlbum pulls the album id from every photo that carries it and
// returns the number of photos touched.
func (r *PhotoRepository) DetachAlbum(ctx context.Context, albumID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PhotoCollection)

	res, err := coll.UpdateMany(ctx,
		bson.M{"album_ids": albumID},
		bson.M{"$pull": bson.M{"album_ids": albumID}},
	)
	if err != nil {
		r.log.Error("failed to detach album from photos", "album", albumID.Hex(), "err", err)

		return 0, fmt.Errorf("detaching album: %w", err)
	}

	return res.ModifiedCount, nil
}
