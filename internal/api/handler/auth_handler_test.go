package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
	"github.com/crediya/user-service/internal/pkg/token"
)

type stubAuthService struct {
	auth *domain.Auth
	err  error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string, _ ports.TokenIssuer, _ ports.PasswordVerifier) (*domain.Auth, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.auth, nil
}

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEchoWithValidator()
	tokens := token.NewService("secret", time.Hour)
	h := NewAuthHandler(&stubAuthService{auth: &domain.Auth{
		UserID: "u1",
		RoleID: domain.RoleClient.ID(),
		Name:   "Juan",
		Token:  "tok-1",
	}}, tokens)

	body := `{"email":"juan@test.com","password":"pass123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok-1"`) {
		t.Fatalf("response must carry the token, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Juan"`) {
		t.Fatalf("response must carry the display name, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, token.NewService("secret", time.Hour))

	body := `{"email":"juan@test.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAuthHandler(&stubAuthService{}, token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %v", err)
	}
}

func TestAuthHandler_Validate(t *testing.T) {
	e := newEchoWithValidator()
	tokens := token.NewService("secret", time.Hour)
	h := NewAuthHandler(&stubAuthService{}, tokens)

	signed, err := tokens.Issue("u1", domain.RoleClient.ID())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Validate(c); err != nil {
		t.Fatalf("validate handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user_id":"u1"`) {
		t.Fatalf("response must echo the subject, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Validate_BadToken(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAuthHandler(&stubAuthService{}, token.NewService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Validate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	hash, err := hashPassword("pass123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pass123" {
		t.Fatalf("password must be hashed")
	}
	if !verifyPassword("pass123", hash) {
		t.Fatalf("verifier must accept the original password")
	}
	if verifyPassword("other", hash) {
		t.Fatalf("verifier must reject a wrong password")
	}
	if verifyPassword("pass123", "") {
		t.Fatalf("verifier must reject an empty stored hash")
	}
}
