package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// RoleManager is the role store: it guards the closed role set in front of a RoleRepository.
type RoleManager struct {
	repo ports.RoleRepository
}

func NewRoleManager(repo ports.RoleRepository) *RoleManager {
	return &RoleManager{repo: repo}
}

func (m *RoleManager) RoleExists(ctx context.Context, role domain.Role) (bool, error) {
	if !role.Valid() {
		return false, nil
	}
	return m.repo.Exists(ctx, role)
}

func (m *RoleManager) CreateRole(ctx context.Context, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("create role: unknown role %q", role)
	}
	if err := m.repo.Create(ctx, role); err != nil && !errors.Is(err, domain.ErrRoleExists) {
		return fmt.Errorf("create role %s: %w", role, err)
	}
	return nil
}

func (m *RoleManager) GetRoles(ctx context.Context, user *domain.User) ([]domain.Role, error) {
	roles, err := m.repo.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return domain.SortRoles(roles), nil
}

func (m *RoleManager) AddToRole(ctx context.Context, user *domain.User, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrRoleNotFound
	}
	return m.repo.Assign(ctx, user.ID, role)
}

var _ ports.RoleStore = (*RoleManager)(nil)
