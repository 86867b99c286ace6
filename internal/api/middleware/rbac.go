package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crediya/user-service/internal/api/metrics"
	"github.com/crediya/user-service/internal/core/authz"
	"github.com/crediya/user-service/internal/core/domain"
)

// RequireAdmin enforces the admin-only policy. Requests without claims are
// denied, never erred.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsKey).(*domain.Claims)
			if !authz.AdminOnly(claims) {
				metrics.AuthzDeniedTotal.WithLabelValues("admin_only").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin enforces the admin-or-self policy: admins pass, clients
// pass only when the path parameter named by param equals their own user id.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsKey).(*domain.Claims)
			if !authz.AdminOrSelf(claims, c.Param(param)) {
				metrics.AuthzDeniedTotal.WithLabelValues("admin_or_self").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
