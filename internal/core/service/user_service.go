package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

// UserService implements the user lifecycle use case. All mutations run the
// validation pipeline before touching the repository: structural validation,
// then email uniqueness (register) or target existence (update), then role
// existence.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleExistenceChecker
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleExistenceChecker, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

// Register validates the candidate, confirms email uniqueness and role
// existence, assigns a fresh id, and persists. The uniqueness pre-check is a
// fast path; a write-time duplicate-key conflict from the repository is the
// authoritative ErrUserExists signal.
func (s *UserService) Register(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	user := fromInput(input)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.confirmEmailUnique(ctx, user.EmailAddress); err != nil {
		return nil, err
	}
	if err := s.confirmRoleExists(ctx, user.RoleID); err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", user.EmailAddress).Msg("failed to create user")
		return nil, fmt.Errorf("%w: internal error saving user", domain.ErrInvalidData)
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.EmailAddress).Msg("user registered")
	return created, nil
}

// Update revalidates the candidate, confirms the target exists and the role
// exists, and persists with the id pinned to the path parameter. Any id in
// the input is overwritten.
func (s *UserService) Update(ctx context.Context, id string, input ports.UserInput) (*domain.User, error) {
	user := fromInput(input)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.confirmRoleExists(ctx, user.RoleID); err != nil {
		return nil, err
	}

	user.ID = id

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, fmt.Errorf("%w: internal error updating user", domain.ErrInvalidData)
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmailAddress(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("%w: internal error listing users", domain.ErrInvalidData)
	}
	return users, nil
}

// Delete removes the user after confirming it exists; deleting an absent user
// fails with ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("%w: internal error deleting user", domain.ErrInvalidData)
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) confirmEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.EmailAddressExists(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("email existence check failed")
		return fmt.Errorf("%w: internal error saving user", domain.ErrInvalidData)
	}
	if exists {
		return fmt.Errorf("%w: a user is already registered with email address: %s", domain.ErrUserExists, email)
	}
	return nil
}

func (s *UserService) confirmRoleExists(ctx context.Context, roleID string) error {
	ok, err := s.roles.ExistsByID(ctx, roleID)
	if err != nil {
		s.logger.Error().Err(err).Str("role_id", roleID).Msg("role existence check failed")
		return fmt.Errorf("%w: internal error saving user", domain.ErrInvalidData)
	}
	if !ok {
		return fmt.Errorf("%w: role does not exist: %s", domain.ErrInvalidData, roleID)
	}
	return nil
}

func fromInput(input ports.UserInput) *domain.User {
	return &domain.User{
		Name:         input.Name,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		Address:      input.Address,
		Phone:        input.Phone,
		EmailAddress: input.EmailAddress,
		BaseSalary:   input.BaseSalary,
		RoleID:       input.RoleID,
		PasswordHash: input.PasswordHash,
	}
}
