package ports

import (
	"context"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, user *domain.User) error
}

// RoleRepository defines persistence for roles and role assignments.
type RoleRepository interface {
	Exists(ctx context.Context, role domain.Role) (bool, error)
	// Create returns domain.ErrRoleExists when the role is already defined.
	Create(ctx context.Context, role domain.Role) error
	ListForUser(ctx context.Context, userID string) ([]domain.Role, error)
	// Assign returns domain.ErrRoleNotFound when role was never created.
	Assign(ctx context.Context, userID string, role domain.Role) error
}
