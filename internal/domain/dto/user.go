package dto

import (
	"fotolio/internal/domain/model"
)

// UserRegister carries the fields required to register a new user.
type UserRegister struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch is the mutable profile field set of a user.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserProfile is the wire representation of a user. It never carries the
// credential hash.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

func NewUserProfile(u *model.User) UserProfile {
	return UserProfile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
