// Package authz holds the authorization policies applied to authenticated
// requests. Decisions are pure functions of the token claims and the owning
// user id of the requested resource; absence of credentials always denies.
package authz

import "github.com/crediya/user-service/internal/core/domain"

// AdminOnly allows the request iff the caller holds the admin role.
func AdminOnly(claims *domain.Claims) bool {
	if claims == nil {
		return false
	}
	return claims.RoleID == domain.RoleAdmin.ID()
}

// AdminOrSelf allows admins unconditionally, and clients only when the
// requested resource belongs to them. Any other role is denied.
func AdminOrSelf(claims *domain.Claims, resourceOwnerID string) bool {
	if claims == nil {
		return false
	}
	if claims.RoleID == domain.RoleAdmin.ID() {
		return true
	}
	if claims.RoleID == domain.RoleClient.ID() && resourceOwnerID != "" {
		return claims.UserID == resourceOwnerID
	}
	return false
}
