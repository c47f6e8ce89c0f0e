package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/swcatalog/film-manager/internal/api/middleware"
	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

type stubAuthService struct {
	validateUser *domain.User
	validateErr  error
	signUpToken  string
	signUpErr    error
	signUpInput  *ports.SignUpInput
	changeErr    error
	changeCalled bool
}

func (s *stubAuthService) ValidateCredentials(_ context.Context, email, password string) (*domain.User, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.validateUser, nil
}

func (s *stubAuthService) SignIn(_ context.Context, user *domain.User) (string, error) {
	return "signed-token", nil
}

func (s *stubAuthService) SignUp(_ context.Context, input ports.SignUpInput) (string, error) {
	s.signUpInput = &input
	if s.signUpErr != nil {
		return "", s.signUpErr
	}
	return s.signUpToken, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, userID int64, current, newPassword string) error {
	s.changeCalled = true
	return s.changeErr
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{validateUser: &domain.User{ID: 1, Email: "user@example.com", Role: domain.RoleUser}}
	h := NewAuthHandler(svc)

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"Abcd1234."}`)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["access_token"] != "signed-token" {
		t.Fatalf("missing access_token in response: %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{validateErr: domain.ErrInvalidCredentials})

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"wrong"}`)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"user@example.com"}`)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{signUpToken: "fresh-token"}
	h := NewAuthHandler(svc)

	body := `{
		"email": "new@example.com",
		"confirmEmail": "new@example.com",
		"firstName": "Luke",
		"lastName": "Skywalker",
		"password": "Abcd1234.",
		"confirmPassword": "Abcd1234."
	}`
	req := jsonRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.signUpInput == nil || svc.signUpInput.Email != "new@example.com" {
		t.Fatalf("service not called with registration input")
	}
	if svc.signUpInput.Role != "" {
		t.Fatalf("role should be empty when omitted, got %q", svc.signUpInput.Role)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{
		"email": "new@example.com",
		"confirmEmail": "new@example.com",
		"firstName": "Luke",
		"lastName": "Skywalker",
		"password": "Abcd1234.",
		"confirmPassword": "different"
	}`
	req := jsonRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	err := h.Register(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if svc.signUpInput != nil {
		t.Fatalf("service must not be called when confirmation mismatches")
	}
}

func TestAuthHandler_Register_EmailMismatch(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	body := `{
		"email": "new@example.com",
		"confirmEmail": "other@example.com",
		"firstName": "Luke",
		"lastName": "Skywalker",
		"password": "Abcd1234.",
		"confirmPassword": "Abcd1234."
	}`
	req := jsonRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	err := h.Register(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	body := `{
		"currentPassword": "Abcd1234.",
		"newPassword": "Dcba5678.",
		"confirmPassword": "Dcba5678."
	}`
	req := jsonRequest(http.MethodPatch, "/api/auth/change-password", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(7))

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.changeCalled {
		t.Fatalf("service not called")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Password changed successfully" {
		t.Fatalf("unexpected message: %v", resp)
	}
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{changeErr: domain.ErrInvalidCurrentPassword})

	body := `{
		"currentPassword": "wrong",
		"newPassword": "Dcba5678.",
		"confirmPassword": "Dcba5678."
	}`
	req := jsonRequest(http.MethodPatch, "/api/auth/change-password", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(7))

	if err := h.ChangePassword(c); err != domain.ErrInvalidCurrentPassword {
		t.Fatalf("expected ErrInvalidCurrentPassword to propagate, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_NoClaims(t *testing.T) {
	e := newEcho()
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	req := jsonRequest(http.MethodPatch, "/api/auth/change-password", `{}`)
	rec := httptest.NewRecorder()

	err := h.ChangePassword(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if svc.changeCalled {
		t.Fatalf("service must not be called without claims")
	}
}
