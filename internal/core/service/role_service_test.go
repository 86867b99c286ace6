package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func cloneRole(r *domain.Role) *domain.Role {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (s *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	s.roles[role.ID] = cloneRole(role)
	return cloneRole(role), nil
}

func (s *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := s.roles[role.ID]; !ok {
		return nil, fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, role.ID)
	}
	s.roles[role.ID] = cloneRole(role)
	return cloneRole(role), nil
}

func (s *stubRoleRepo) GetByID(_ context.Context, id string) (*domain.Role, error) {
	r, ok := s.roles[id]
	if !ok {
		return nil, fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, id)
	}
	return cloneRole(r), nil
}

func (s *stubRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	for _, r := range s.roles {
		if r.Name == name {
			return cloneRole(r), nil
		}
	}
	return nil, fmt.Errorf("%w: name: %s", domain.ErrRoleNotFound, name)
}

func (s *stubRoleRepo) FindAll(_ context.Context) ([]*domain.Role, error) {
	var out []*domain.Role
	for _, r := range s.roles {
		out = append(out, cloneRole(r))
	}
	return out, nil
}

func (s *stubRoleRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := s.roles[id]; !ok {
		return fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, id)
	}
	delete(s.roles, id)
	return nil
}

func (s *stubRoleRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := s.roles[id]
	return ok, nil
}

func TestRoleService_Create(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	role, err := svc.Create(context.Background(), ports.RoleInput{Name: " DEV ", Description: "Developers"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if role.ID == "" {
		t.Fatalf("expected a freshly assigned id")
	}
	if role.Name != "DEV" {
		t.Fatalf("expected trimmed name, got %q", role.Name)
	}

	if _, err := svc.Create(context.Background(), ports.RoleInput{Name: "", Description: "x"}); !errors.Is(err, domain.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestRoleService_Update_NotFound(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.RoleInput{Name: "DEV", Description: "x"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_DeleteAndGet(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	role, _ := svc.Create(context.Background(), ports.RoleInput{Name: "DEV", Description: "Developers"})

	got, err := svc.GetByID(context.Background(), role.ID)
	if err != nil || got.Name != "DEV" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}

	if err := svc.Delete(context.Background(), role.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), role.ID); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound on second delete, got %v", err)
	}
}
