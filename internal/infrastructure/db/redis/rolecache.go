package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crediya/user-service/internal/api/metrics"
	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

const roleExistsTTL = 5 * time.Minute

// CachedRoleRepository decorates a RoleRepository with a Redis-backed
// positive cache for ExistsByID. Role existence is checked on every user
// mutation while roles themselves change rarely, so positive answers are
// cached under a short TTL. Mutations invalidate the affected key; negative
// answers are never cached.
type CachedRoleRepository struct {
	inner  ports.RoleRepository
	client *redis.Client
}

func NewCachedRoleRepository(inner ports.RoleRepository, client *redis.Client) *CachedRoleRepository {
	return &CachedRoleRepository{inner: inner, client: client}
}

func (c *CachedRoleRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(id)).Result()
	if err == nil && n > 0 {
		metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	// A Redis failure degrades to the source of truth.
	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()

	exists, err := c.inner.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		_ = c.client.Set(ctx, c.key(id), "1", roleExistsTTL).Err()
	}
	return exists, nil
}

func (c *CachedRoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	return c.inner.Create(ctx, role)
}

func (c *CachedRoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	updated, err := c.inner.Update(ctx, role)
	if err == nil {
		c.invalidate(ctx, role.ID)
	}
	return updated, err
}

func (c *CachedRoleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CachedRoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return c.inner.GetByName(ctx, name)
}

func (c *CachedRoleRepository) FindAll(ctx context.Context) ([]*domain.Role, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachedRoleRepository) DeleteByID(ctx context.Context, id string) error {
	err := c.inner.DeleteByID(ctx, id)
	if err == nil {
		c.invalidate(ctx, id)
	}
	return err
}

func (c *CachedRoleRepository) invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *CachedRoleRepository) key(id string) string {
	return fmt.Sprintf("roleexists:%s", id)
}
