package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crediya/user-service/internal/core/domain"
)

const roleCollection = "roles"

// RoleRepository is the MongoDB implementation of ports.RoleRepository.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(roleCollection)}
}

// SeedWellKnownRoles upserts the fixed ADMIN/CLIENT/ASSESSOR roles so their
// well-known ids always resolve, without overwriting operator edits to the
// descriptions.
func (r *RoleRepository) SeedWellKnownRoles(ctx context.Context) error {
	for _, wk := range domain.WellKnownRoles() {
		filter := bson.M{"_id": wk.ID()}
		update := bson.M{"$setOnInsert": bson.M{
			"name":        string(wk),
			"description": fmt.Sprintf("built-in %s role", string(wk)),
		}}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed role %s: %w", wk, err)
		}
	}
	return nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	if _, err := r.coll.InsertOne(ctx, role); err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return role, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": role.ID}, role)
	if err != nil {
		return nil, fmt.Errorf("replace role: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, role.ID)
	}
	return role, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	var role domain.Role
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&role); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, id)
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&role); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: name: %s", domain.ErrRoleNotFound, name)
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]*domain.Role, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []*domain.Role
	if err := cur.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: id: %s", domain.ErrRoleNotFound, id)
	}
	return nil
}

func (r *RoleRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count roles by id: %w", err)
	}
	return n > 0, nil
}
