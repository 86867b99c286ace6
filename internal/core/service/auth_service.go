package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

// AuthService implements login. The token issuer and password verifier are
// injected per call so the flow stays independent of the signing and hashing
// mechanisms.
type AuthService struct {
	users  ports.UserService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login verifies the credentials for email and, on success, returns an Auth
// value carrying a freshly issued token. Unknown email and password mismatch
// both fail with ErrInvalidCredentials; the internal messages differ but the
// HTTP layer renders a single message for both.
func (s *AuthService) Login(ctx context.Context, email, password string, issue ports.TokenIssuer, verify ports.PasswordVerifier) (*domain.Auth, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user not found for email: %s", domain.ErrInvalidCredentials, email)
		}
		return nil, err
	}

	if !verify(password, user.PasswordHash) {
		s.logger.Warn().Str("user_id", user.ID).Msg("login rejected: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := issue(user.ID, user.RoleID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &domain.Auth{
		UserID: user.ID,
		RoleID: user.RoleID,
		Name:   user.Name,
		Token:  tok,
	}, nil
}
