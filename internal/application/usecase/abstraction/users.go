package abstraction

import (
	"context"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
)

// Users defines the user operations exposed to the presentation layer.
type Users interface {
	Register(ctx context.Context, data dto.UserRegister) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, userID string, patch dto.UserPatch) (*model.User, error)
	Delete(ctx context.Context, userID string) (bool, error)
}
