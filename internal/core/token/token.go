// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are stateless: validity is purely
// a function of the HMAC signature and the embedded expiry, never a lookup.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

var (
	// ErrExpired marks a well-formed token whose expiry has elapsed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid marks a malformed token or a bad signature.
	ErrInvalid = errors.New("invalid token")
)

// Claims are the identity facts embedded in a session token. They reflect
// the user's role at issuance time; a later role change does not invalidate
// already-issued tokens before they expire.
type Claims struct {
	UserID int64
	Email  string
	Role   domain.Role
}

type jwtClaims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens with a process-wide secret loaded
// once at startup.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwtClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a raw token. Expiry is enforced here, not at
// issuance. Returns ErrExpired for an elapsed token and ErrInvalid for
// everything else that fails validation.
func (m *Manager) Verify(raw string) (*Claims, error) {
	var claims jwtClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalid
	}

	return &Claims{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}
