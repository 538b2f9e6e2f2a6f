package memory

import (
	"context"
	"sync"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// RoleRepository keeps roles and assignments in process memory.
type RoleRepository struct {
	mu          sync.RWMutex
	roles       map[domain.Role]struct{}
	assignments map[string]map[domain.Role]struct{}
}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{
		roles:       make(map[domain.Role]struct{}),
		assignments: make(map[string]map[domain.Role]struct{}),
	}
}

func (r *RoleRepository) Exists(_ context.Context, role domain.Role) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.roles[role]
	return ok, nil
}

func (r *RoleRepository) Create(_ context.Context, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roles[role]; ok {
		return domain.ErrRoleExists
	}
	r.roles[role] = struct{}{}
	return nil
}

func (r *RoleRepository) ListForUser(_ context.Context, userID string) ([]domain.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Role, 0, len(r.assignments[userID]))
	for role := range r.assignments[userID] {
		out = append(out, role)
	}
	return out, nil
}

func (r *RoleRepository) Assign(_ context.Context, userID string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roles[role]; !ok {
		return domain.ErrRoleNotFound
	}
	held, ok := r.assignments[userID]
	if !ok {
		held = make(map[domain.Role]struct{})
		r.assignments[userID] = held
	}
	held[role] = struct{}{}
	return nil
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
