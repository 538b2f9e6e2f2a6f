package ports

import (
	"context"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// CredentialStore owns user records and their password credentials.
type CredentialStore interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create validates and hashes password, then persists user.
	// Policy failures come back as a credential validation *domain.AuthError.
	Create(ctx context.Context, user *domain.User, password string) error
	CheckPassword(ctx context.Context, user *domain.User, password string) (bool, error)
}

// RoleStore owns role definitions and user-to-role assignments.
type RoleStore interface {
	RoleExists(ctx context.Context, role domain.Role) (bool, error)
	// CreateRole is a no-op when the role already exists.
	CreateRole(ctx context.Context, role domain.Role) error
	GetRoles(ctx context.Context, user *domain.User) ([]domain.Role, error)
	// AddToRole grants role to user. Granting a held role changes nothing.
	AddToRole(ctx context.Context, user *domain.User, role domain.Role) error
}
