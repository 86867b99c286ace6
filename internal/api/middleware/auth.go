package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crediya/user-service/internal/pkg/token"
)

// ClaimsKey is the echo context key under which Auth stores the parsed
// *domain.Claims.
const ClaimsKey = "auth_claims"

// Auth validates the bearer token and injects its claims into the context.
// Expired tokens are rejected here even when they parse structurally.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			raw := parts[1]
			if !tokens.IsValid(raw) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimsKey, claims)
			c.Set("user_id", claims.UserID)
			c.Set("role_id", claims.RoleID)

			return next(c)
		}
	}
}
