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
	"fotolio/pkg/logger"
)

type AlbumRepository struct {
	db  *Database
	log *logger.Logger
}

func NewAlbumRepository(db *Database, log *logger.Logger) *AlbumRepository {
	return &AlbumRepository{
		db:  db,
		log: log,
	}
}

func (r *AlbumRepository) Create(ctx context.Context, album *model.Album) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AlbumCollection)

	res, err := coll.InsertOne(ctx, album)
	if err != nil {
		r.log.Error("failed to insert album", "owner", album.UserID.Hex(), "err", err)

		return nil, fmt.Errorf("inserting album: %w", err)
	}

	created := *album
	created.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Info("album created", "id", created.ID.Hex(), "owner", created.UserID.Hex())

	return &created, nil
}

func (r *AlbumRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AlbumCollection)

	var album model.Album
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&album)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to retrieve album", "id", id.Hex(), "err", err)

		return nil, fmt.Errorf("retrieving album: %w", err)
	}

	return &album, nil
}

func (r *AlbumRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AlbumCollection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		r.log.Error("failed to list albums by owner", "owner", ownerID.Hex(), "err", err)

		return nil, fmt.Errorf("listing albums: %w", err)
	}
	defer cursor.Close(ctx)

	albums := []model.Album{}
	if err := cursor.All(ctx, &albums); err != nil {
		r.log.Error("failed to decode albums", "err", err)

		return nil, fmt.Errorf("decoding albums: %w", err)
	}

	return albums, nil
}

// Update applies the patch to the album only when it is owned by ownerID.
// A non-owner's update matches nothing and reports nil.
func (r *AlbumRepository) Update(ctx context.Context, id, ownerID primitive.ObjectID,
	patch dto.AlbumPatch,
) (*model.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.CoverPhotoURL != nil {
		set["cover_photo_url"] = *patch.CoverPhotoURL
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(AlbumCollection)

	var updated model.Album
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to update album", "id", id.Hex(), "owner", ownerID.Hex(), "err", err)

		return nil, fmt.Errorf("updating album: %w", err)
	}

	return &updated, nil
}

// Delete removes the album only when it is owned by ownerID. It reports true
// iff exactly one record was removed.
func (r *AlbumRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(AlbumCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		r.log.Error("failed to delete album", "id", id.Hex(), "owner", ownerID.Hex(), "err", err)

		return false, fmt.Errorf("deleting album: %w", err)
	}

	return res.DeletedCount == 1, nil
}
