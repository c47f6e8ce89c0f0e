package ports

import (
	"context"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

// SignUpInput carries an already schema-validated registration. The
// email/password confirmation equality has been checked upstream.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Role defaults to USER when empty.
	Role domain.Role
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// ValidateCredentials returns the matching user, or
	// domain.ErrInvalidCredentials for both unknown email and wrong
	// password.
	ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// SignIn issues a bearer token carrying the user's current identity.
	SignIn(ctx context.Context, user *domain.User) (string, error)
	// SignUp registers a new user and signs them in.
	SignUp(ctx context.Context, input SignUpInput) (string, error)
	// ChangePassword verifies the current password and replaces the stored
	// hash. Mismatch fails with domain.ErrInvalidCurrentPassword.
	ChangePassword(ctx context.Context, userID int64, current, newPassword string) error
}
