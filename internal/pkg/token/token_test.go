package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/user-service/internal/core/domain"
)

const testSecret = "test-secret"

func TestIssueAndParse_RoundTrip(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	tok, err := svc.Issue("user-1", "role-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected subject user-1, got %s", claims.UserID)
	}
	if claims.RoleID != "role-1" {
		t.Fatalf("expected role role-1, got %s", claims.RoleID)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiration %v must be after issue time %v", claims.ExpiresAt, claims.IssuedAt)
	}

	if !svc.IsValid(tok) {
		t.Fatalf("freshly issued token must be valid")
	}
}

func TestExtractProjections(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	tok, _ := svc.Issue("user-7", "role-9")

	userID, err := svc.ExtractUserID(tok)
	if err != nil || userID != "user-7" {
		t.Fatalf("ExtractUserID = %q, %v", userID, err)
	}
	roleID, err := svc.ExtractRoleID(tok)
	if err != nil || roleID != "role-9" {
		t.Fatalf("ExtractRoleID = %q, %v", roleID, err)
	}
}

func TestParse_MalformedToken(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Parse(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
	if svc.IsValid("not-a-token") {
		t.Fatalf("IsValid must be false for garbage input")
	}
}

func TestParse_WrongKey(t *testing.T) {
	other := NewService("another-secret", time.Hour)
	tok, _ := other.Issue("user-1", "role-1")

	svc := NewService(testSecret, time.Hour)
	if _, err := svc.Parse(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestParse_RejectsUnexpectedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":     "user-1",
		"role_id": "role-1",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	svc := NewService(testSecret, time.Hour)
	if _, err := svc.Parse(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestExpiredToken_ParsesButIsNotValid(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "user-1",
		"role_id": "role-1",
		"iat":     now.Add(-2 * time.Hour).Unix(),
		"exp":     now.Add(-time.Hour).Unix(),
	})
	tok, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	svc := NewService(testSecret, time.Hour)

	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("expired token must still parse structurally: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if svc.IsValid(tok) {
		t.Fatalf("expired token must not be valid")
	}
}

func TestParse_MissingClaims(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tok, _ := noRole.SignedString([]byte(testSecret))
	if _, err := svc.Parse(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing role claim, got %v", err)
	}
}
