package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

// UserService implements the admin-facing user management use cases.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Create provisions a user on behalf of an administrator. The password is
// hashed here; the caller supplies plaintext.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies a partial patch; zero affected rows means the user does not
// exist (or is soft-deleted).
func (s *UserService) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	affected, updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return updated, nil
}

// Remove soft-deletes the user; the row persists with a deletion timestamp.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
