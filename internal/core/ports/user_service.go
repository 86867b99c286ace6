package ports

import (
	"context"
	"time"

	"github.com/crediya/user-service/internal/core/domain"
)

// UserInput carries all candidate data for registering or updating a user.
// PasswordHash is the already-hashed credential; raw passwords never reach
// the use case.
type UserInput struct {
	Name         string
	LastName     string
	BirthDate    *time.Time
	Address      string
	Phone        string
	EmailAddress string
	BaseSalary   float64
	RoleID       string
	PasswordHash string
}

// UserService defines the user lifecycle use case.
type UserService interface {
	// Register validates the candidate, confirms email uniqueness and role
	// existence, assigns a fresh id, and persists.
	Register(ctx context.Context, input UserInput) (*domain.User, error)
	// Update revalidates the candidate and persists it under id. The id in
	// the input is ignored; the path id wins.
	Update(ctx context.Context, id string, input UserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
