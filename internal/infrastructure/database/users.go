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

type UserRepository struct {
	db  *Database
	log *logger.Logger
}

func NewUserRepository(db *Database, log *logger.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		r.log.Error("failed to insert user", "err", err)

		return nil, fmt.Errorf("inserting user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Info("user created", "id", created.ID.Hex())

	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to retrieve user by id", "id", id.Hex(), "err", err)

		return nil, fmt.Errorf("retrieving user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to retrieve user by email", "err", err)

		return nil, fmt.Errorf("retrieving user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("failed to list users", "err", err)

		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		r.log.Error("failed to decode users", "err", err)

		return nil, fmt.Errorf("decoding users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, patch dto.UserPatch) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var updated model.User
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Error("failed to update user", "id", id.Hex(), "err", err)

		return nil, fmt.Errorf("updating user: %w", err)
	}

	return &updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("failed to delete user", "id", id.Hex(), "err", err)

		return false, fmt.Errorf("deleting user: %w", err)
	}

	return res.DeletedCount == 1, nil
}
