package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fotolio/internal/domain/dto"
	"fotolio/internal/domain/model"
	"fotolio/internal/domain/repository/database"
	"fotolio/pkg/identifier"
	"fotolio/pkg/logger"
)

// UserService handles registration, authentication and profile CRUD. Deleting
// a user does not cascade to their albums or photos; that cleanup is an
// explicit administrative action by the caller.
type UserService struct {
	users database.Users
	log   *logger.Logger
}

func NewUserService(users database.Users, log *logger.Logger) *UserService {
	return &UserService{
		users: users,
		log:   log,
	}
}

func (s *UserService) Register(ctx context.Context, data dto.UserRegister) (*model.User, error) {
	var missing []string
	if strings.TrimSpace(data.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(data.Email) == "" {
		missing = append(missing, "email")
	}
	if data.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		s.log.Warn("registration with incomplete data", "missing", strings.Join(missing, ","))

		return nil, invalidInput(missing...)
	}

	existing, err := s.users.GetByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("registration with taken email")

		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "id", created.ID.Hex())

	return created, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("failed login attempt", "user", user.ID.Hex())

		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*model.User, error) {
	id, err := identifier.Parse(userID)
	if err != nil {
		return nil, invalidInput("userId")
	}

	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalidInput("email")
	}

	return s.users.GetByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Update(ctx context.Context, userID string, patch dto.UserPatch) (*model.User, error) {
	id, err := identifier.Parse(userID)
	if err != nil {
		return nil, invalidInput("userId")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, invalidInput("email")
	}

	return s.users.Update(ctx, id, patch)
}

func (s *UserService) Delete(ctx context.Context, userID string) (bool, error) {
	id, err := identifier.Parse(userID)
	if err != nil {
		return false, invalidInput("userId")
	}

	return s.users.Delete(ctx, id)
}
