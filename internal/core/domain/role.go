package domain

import (
	"fmt"
	"strings"
)

// WellKnownRole is the closed set of role identities the service recognises.
// Each one is bound to a fixed id; the set is not extensible at runtime.
type WellKnownRole string

const (
	RoleAdmin    WellKnownRole = "ADMIN"
	RoleClient   WellKnownRole = "CLIENT"
	RoleAssessor WellKnownRole = "ASSESSOR"
)

var wellKnownRoleIDs = map[WellKnownRole]string{
	RoleAdmin:    "80e86d27-20a4-44be-b90d-44eeb378d409",
	RoleClient:   "b71ed6c9-1dd9-4c14-8a4a-fe06166d5cdb",
	RoleAssessor: "3a371249-a1f0-4eb3-b06c-5a670ab6eca9",
}

// ID returns the fixed identifier bound to a well-known role, or "" for an
// unrecognised value.
func (r WellKnownRole) ID() string {
	return wellKnownRoleIDs[r]
}

// WellKnownRoles returns the closed role set in a stable order.
func WellKnownRoles() []WellKnownRole {
	return []WellKnownRole{RoleAdmin, RoleClient, RoleAssessor}
}

// Role is a named grouping users reference through RoleID.
type Role struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Validate checks the role's fields; all failures wrap ErrInvalidData.
// Name and description are trimmed in place.
func (r *Role) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("%w: role name cannot be empty", ErrInvalidData)
	}
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return fmt.Errorf("%w: role description cannot be empty", ErrInvalidData)
	}
	return nil
}
