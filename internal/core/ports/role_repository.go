package ports

import (
	"context"

	"github.com/crediya/user-service/internal/core/domain"
)

// RoleRepository is the persistence gateway for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	GetByID(ctx context.Context, id string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]*domain.Role, error)
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
