// Package token issues and parses the HS256 session tokens used by the API.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crediya/user-service/internal/core/domain"
)

const roleClaim = "role_id"

const defaultTTL = 24 * time.Hour

// Service signs and verifies session tokens with a single process-wide
// symmetric key. It is immutable after construction and safe for concurrent
// use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service from the configured signing key and expiration
// offset. A non-positive ttl falls back to defaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token whose subject is userID, with the role id as a custom
// claim, stamped with the issue time and the fixed expiration offset.
func (s *Service) Issue(userID, roleID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID,
		roleClaim: roleID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse verifies the signature and structural validity of tok and returns its
// claims. Expiration is deliberately not checked here; IsValid applies it.
// Malformed, tampered, and unsigned tokens are indistinguishable: all return
// domain.ErrInvalidToken.
func (s *Service) Parse(tok string) (*domain.Claims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	sub, err := mc.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	roleID, _ := mc[roleClaim].(string)
	if roleID == "" {
		return nil, fmt.Errorf("%w: missing role claim", domain.ErrInvalidToken)
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiration", domain.ErrInvalidToken)
	}
	iat, err := mc.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, fmt.Errorf("%w: missing issue time", domain.ErrInvalidToken)
	}

	return &domain.Claims{
		UserID:    sub,
		RoleID:    roleID,
		IssuedAt:  iat.Time,
		ExpiresAt: exp.Time,
	}, nil
}

// IsValid reports whether tok parses and has not expired. It never errors:
// any parse failure or expiry yields false.
func (s *Service) IsValid(tok string) bool {
	claims, err := s.Parse(tok)
	if err != nil {
		return false
	}
	return time.Now().Before(claims.ExpiresAt)
}

// ExtractUserID returns the subject of tok; it fails the same way Parse does.
func (s *Service) ExtractUserID(tok string) (string, error) {
	claims, err := s.Parse(tok)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// ExtractRoleID returns the role claim of tok; it fails the same way Parse does.
func (s *Service) ExtractRoleID(tok string) (string, error) {
	claims, err := s.Parse(tok)
	if err != nil {
		return "", err
	}
	return claims.RoleID, nil
}
