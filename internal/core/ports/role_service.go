package ports

import (
	"context"

	"github.com/crediya/user-service/internal/core/domain"
)

// RoleInput carries candidate data for creating or updating a role.
type RoleInput struct {
	Name        string
	Description string
}

// RoleService defines the role management use case. Role mutation carries no
// logic beyond field validation and existence checks.
type RoleService interface {
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Update(ctx context.Context, id string, input RoleInput) (*domain.Role, error)
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
