package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

const defaultKeyPrefix = "auth:"

// RoleRepository keeps role definitions and assignments in Redis sets.
// Key format:
//
//	<prefix>roles               set of role names
//	<prefix>user:<id>:roles     set of roles held by a user
type RoleRepository struct {
	client *redis.Client
	prefix string
}

// NewRoleRepository wraps client. An empty prefix selects "auth:".
func NewRoleRepository(client *redis.Client, prefix string) *RoleRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RoleRepository{client: client, prefix: prefix}
}

func (r *RoleRepository) Exists(ctx context.Context, role domain.Role) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.rolesKey(), string(role)).Result()
	if err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return ok, nil
}

func (r *RoleRepository) Create(ctx context.Context, role domain.Role) error {
	added, err := r.client.SAdd(ctx, r.rolesKey(), string(role)).Result()
	if err != nil {
		return fmt.Errorf("create role: %w", err)
	}
	if added == 0 {
		return domain.ErrRoleExists
	}
	return nil
}

func (r *RoleRepository) ListForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	members, err := r.client.SMembers(ctx, r.userKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	roles := make([]domain.Role, 0, len(members))
	for _, m := range members {
		roles = append(roles, domain.Role(m))
	}
	return roles, nil
}

func (r *RoleRepository) Assign(ctx context.Context, userID string, role domain.Role) error {
	exists, err := r.Exists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRoleNotFound
	}
	if err := r.client.SAdd(ctx, r.userKey(userID), string(role)).Err(); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func (r *RoleRepository) rolesKey() string {
	return r.prefix + "roles"
}

func (r *RoleRepository) userKey(userID string) string {
	return fmt.Sprintf("%suser:%s:roles", r.prefix, userID)
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
