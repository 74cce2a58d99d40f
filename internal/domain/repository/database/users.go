package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Users is the persistence contract for user records. Not-found is reported
// as a nil record, never as an error.
type Users interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id primitive.ObjectID, patch dto.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
