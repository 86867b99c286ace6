package ports

import (
	"context"

	"github.com/crediya/user-service/internal/core/domain"
)

// TokenIssuer mints a signed session token for a user/role pair. Injected so
// the authentication flow stays independent of the signing mechanism.
type TokenIssuer func(userID, roleID string) (string, error)

// PasswordVerifier reports whether raw matches the stored hash.
type PasswordVerifier func(raw, hash string) bool

// AuthService defines the authentication use case.
type AuthService interface {
	Login(ctx context.Context, email, password string, issue TokenIssuer, verify PasswordVerifier) (*domain.Auth, error)
}

// RoleExistenceChecker is the narrow slice of the role gateway the user
// lifecycle needs; caching decorators implement it too.
type RoleExistenceChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}
