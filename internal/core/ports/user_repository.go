package ports

import (
	"context"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// UserPatch carries the mutable fields of a user update. Nil fields are left
// untouched.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Role         *domain.Role
}

// UserRepository defines the persistence contract for users. Lookups exclude
// soft-deleted rows. "Not found" on update/delete is representable as a zero
// affected count rather than an error.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail matches the email exactly (case-sensitive) and returns
	// domain.ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update applies the patch and returns the affected count plus the
	// updated row (nil when nothing matched).
	Update(ctx context.Context, id int64, patch UserPatch) (int64, *domain.User, error)
	// Delete soft-deletes the user and returns the affected count.
	Delete(ctx context.Context, id int64) (int64, error)
}
