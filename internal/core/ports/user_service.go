package ports

import (
	"context"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// CreateUserInput carries an admin-initiated user creation.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role
}

// UserService defines the admin-facing user management use cases.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Remove(ctx context.Context, id int64) error
}
