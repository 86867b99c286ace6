package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

// RoleService implements role management. Roles are validated only at
// construction time; existence is checked before update and delete.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	role := &domain.Role{Name: input.Name, Description: input.Description}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	role.ID = uuid.NewString()

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role_name", role.Name).Msg("failed to create role")
		return nil, fmt.Errorf("%w: internal error saving role", domain.ErrInvalidData)
	}

	s.logger.Info().Str("role_id", created.ID).Str("role_name", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) Update(ctx context.Context, id string, input ports.RoleInput) (*domain.Role, error) {
	role := &domain.Role{Name: input.Name, Description: input.Description}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.roles.GetByID(ctx, id); err != nil {
		return nil, err
	}

	role.ID = id

	updated, err := s.roles.Update(ctx, role)
	if err != nil {
		s.logger.Error().Err(err).Str("role_id", id).Msg("failed to update role")
		return nil, fmt.Errorf("%w: internal error updating role", domain.ErrInvalidData)
	}
	return updated, nil
}

func (s *RoleService) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list roles")
		return nil, fmt.Errorf("%w: internal error listing roles", domain.ErrInvalidData)
	}
	return roles, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if _, err := s.roles.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.roles.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("role_id", id).Msg("failed to delete role")
		return fmt.Errorf("%w: internal error deleting role", domain.ErrInvalidData)
	}
	return nil
}
