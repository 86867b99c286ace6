package ports

import (
	"context"

	"github.com/crediya/user-service/internal/core/domain"
)

// UserRepository is the persistence gateway for users. Implementations live
// under internal/infrastructure and must return domain sentinel errors for
// the not-found and duplicate-email cases.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	EmailAddressExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmailAddress(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
