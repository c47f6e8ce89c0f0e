package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/pkg/metrics"
	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
	"github.com/swcatalog/film-manager/internal/core/token"
)

// AuthService implements login, registration and password change.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// ValidateCredentials looks the user up by exact email and verifies the
// password. Unknown email and wrong password both fail with the same
// ErrInvalidCredentials so the caller cannot tell which factor was wrong.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return user, nil
}

// SignIn issues a token carrying the user's current id, email and role.
func (s *AuthService) SignIn(ctx context.Context, user *domain.User) (string, error) {
	tkn, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("user signed in")
	return tkn, nil
}

// SignUp registers a new user and immediately signs them in. The email must
// not already be taken; unlike login, that failure is user-visible.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (string, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		s.log.Warn().Str("email", input.Email).Msg("registration with email already in use")
		return "", domain.ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return "", err
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
		return "", err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return s.SignIn(ctx, created)
}

// ChangePassword verifies the caller's current password and overwrites the
// stored hash with a hash of the new one. A wrong current password is a
// business validation failure, not an authentication failure: the caller is
// already authenticated.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !VerifyPassword(current, user.PasswordHash) {
		return domain.ErrInvalidCurrentPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	affected, _, err := s.users.Update(ctx, userID, ports.UserPatch{PasswordHash: &hash})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	s.log.Info().Int64("user_id", userID).Msg("password changed")
	return nil
}
