package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
	"github.com/swcatalog/film-manager/internal/core/token"
)

type stubAuthService struct{}

func (stubAuthService) ValidateCredentials(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}
func (stubAuthService) SignIn(context.Context, *domain.User) (string, error) { return "", nil }
func (stubAuthService) SignUp(context.Context, ports.SignUpInput) (string, error) {
	return "", nil
}
func (stubAuthService) ChangePassword(context.Context, int64, string, string) error { return nil }

type stubUserService struct{}

func (stubUserService) Create(context.Context, ports.CreateUserInput) (*domain.User, error) {
	return &domain.User{ID: 1}, nil
}
func (stubUserService) GetAll(context.Context) ([]domain.User, error) { return nil, nil }
func (stubUserService) GetByID(context.Context, int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (stubUserService) Update(context.Context, int64, ports.UserPatch) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (stubUserService) Remove(context.Context, int64) error { return nil }

type stubFilmService struct {
	getErr error
}

func (s stubFilmService) Create(context.Context, ports.CreateFilmInput) (*domain.Film, error) {
	return &domain.Film{ID: 1}, nil
}
func (s stubFilmService) GetAll(context.Context) ([]domain.Film, error) { return []domain.Film{}, nil }
func (s stubFilmService) GetByID(context.Context, int64) (*domain.Film, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Film{ID: 1, Title: "A New Hope", EpisodeID: 4}, nil
}
func (s stubFilmService) Update(context.Context, int64, ports.FilmPatch) (*domain.Film, error) {
	return nil, domain.ErrFilmNotFound
}
func (s stubFilmService) Remove(context.Context, int64) error { return nil }
func (s stubFilmService) Sync(context.Context) (*ports.SyncResult, error) {
	return &ports.SyncResult{Message: "No new films to synchronize"}, nil
}

// One router instance for the whole test: the prometheus middleware registers
// collectors globally and must not be built twice.
func TestRouter_AccessPolicy(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	e := NewRouter(Services{
		Auth:  stubAuthService{},
		Users: stubUserService{},
		Films: stubFilmService{},
	}, tokens, nil, nil, zerolog.Nop())

	adminToken, err := tokens.Issue(&domain.User{ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	userToken, err := tokens.Issue(&domain.User{ID: 2, Email: "user@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue user token: %v", err)
	}

	do := func(method, path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// Public route: a garbage header is never inspected, the bypass skips
	// token verification entirely.
	if rec := do(http.MethodGet, "/api/films", "Bearer complete-garbage"); rec.Code != http.StatusOK {
		t.Fatalf("public route with garbage token: expected 200, got %d", rec.Code)
	}

	// Protected route without a token rejects before any role check.
	if rec := do(http.MethodGet, "/api/films/1", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("protected route without token: expected 401, got %d", rec.Code)
	}

	// USER token on the USER-only route passes.
	if rec := do(http.MethodGet, "/api/films/1", "Bearer "+userToken); rec.Code != http.StatusOK {
		t.Fatalf("USER on films/:id: expected 200, got %d", rec.Code)
	}

	// Roles are flat: ADMIN is rejected on the USER-only route.
	if rec := do(http.MethodGet, "/api/films/1", "Bearer "+adminToken); rec.Code != http.StatusForbidden {
		t.Fatalf("ADMIN on films/:id: expected 403, got %d", rec.Code)
	}

	// USER on an ADMIN route is forbidden.
	if rec := do(http.MethodPost, "/api/films/sync", "Bearer "+userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("USER on films/sync: expected 403, got %d", rec.Code)
	}

	// ADMIN on an ADMIN route passes.
	if rec := do(http.MethodPost, "/api/films/sync", "Bearer "+adminToken); rec.Code != http.StatusOK {
		t.Fatalf("ADMIN on films/sync: expected 200, got %d", rec.Code)
	}

	// ADMIN-only user management rejects USER.
	if rec := do(http.MethodGet, "/api/users", "Bearer "+userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("USER on users: expected 403, got %d", rec.Code)
	}
}

func TestRouter_ExpiredTokenIsUnauthenticated(t *testing.T) {
	// Issue with an already-elapsed lifetime by using a second manager whose
	// clock numbers come straight from the claims.
	tokens := token.NewManager("secret", time.Nanosecond)
	raw, err := tokens.Issue(&domain.User{ID: 1, Email: "user@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := tokens.Verify(raw); err != token.ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}
