package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/swcatalog/film-manager/internal/core/domain"
)

func resolve(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return resolveError(err, zerolog.Nop(), c)
}

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid Credentials"},
		{domain.ErrEmailInUse, http.StatusBadRequest, "Email already in use"},
		{domain.ErrInvalidCurrentPassword, http.StatusBadRequest, "Invalid current password"},
		{domain.ErrFilmExists, http.StatusBadRequest, "This film already exists"},
		{domain.ErrFilmNotFound, http.StatusNotFound, "film not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrSyncInProgress, http.StatusConflict, "synchronization already in progress"},
	}

	for _, tc := range cases {
		code, msg := resolve(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Errorf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestResolveError_UnexpectedErrorDoesNotLeak(t *testing.T) {
	code, msg := resolve(t, errors.New("pq: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("driver error leaked to the caller: %q", msg)
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find film by id"), domain.ErrFilmNotFound)
	code, _ := resolve(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped domain error not recognised: got %d", code)
	}
}
