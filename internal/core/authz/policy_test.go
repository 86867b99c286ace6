package authz

import (
	"testing"

	"github.com/crediya/user-service/internal/core/domain"
)

func claimsFor(role domain.WellKnownRole, userID string) *domain.Claims {
	return &domain.Claims{UserID: userID, RoleID: role.ID()}
}

func TestAdminOnly(t *testing.T) {
	if !AdminOnly(claimsFor(domain.RoleAdmin, "u1")) {
		t.Fatalf("admin must be allowed")
	}
	if AdminOnly(claimsFor(domain.RoleClient, "u1")) {
		t.Fatalf("client must be denied")
	}
	if AdminOnly(claimsFor(domain.RoleAssessor, "u1")) {
		t.Fatalf("assessor must be denied")
	}
	if AdminOnly(nil) {
		t.Fatalf("absent credentials must default to deny")
	}
	if AdminOnly(&domain.Claims{UserID: "u1", RoleID: "free-form-role"}) {
		t.Fatalf("unknown role must be denied")
	}
}

func TestAdminOrSelf(t *testing.T) {
	if !AdminOrSelf(claimsFor(domain.RoleAdmin, "u1"), "someone-else") {
		t.Fatalf("admin must be allowed for any resource")
	}
	if !AdminOrSelf(claimsFor(domain.RoleClient, "u1"), "u1") {
		t.Fatalf("client must be allowed for own resource")
	}
	if AdminOrSelf(claimsFor(domain.RoleClient, "u1"), "u2") {
		t.Fatalf("client must be denied for another user's resource")
	}
	if AdminOrSelf(claimsFor(domain.RoleAssessor, "u1"), "u1") {
		t.Fatalf("assessor must be denied even for own id")
	}
	if AdminOrSelf(nil, "u1") {
		t.Fatalf("absent credentials must default to deny")
	}
	if AdminOrSelf(claimsFor(domain.RoleClient, "u1"), "") {
		t.Fatalf("missing resource owner must deny for clients")
	}
}
