package ports

import (
	"context"
	"time"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// Confirmation is the success payload of operations that only report status.
type Confirmation struct {
	Message string
}

// SeedResult reports the outcome of role seeding.
// Created is false when every role already existed.
type SeedResult struct {
	Message string
	Created bool
}

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
	Roles     []domain.Role
}

// AuthService defines the registration, login and role management use cases.
// Failures are reported as *domain.AuthError; any other error is an infrastructure fault.
type AuthService interface {
	SeedRoles(ctx context.Context) (*SeedResult, error)
	Register(ctx context.Context, input RegisterInput) (*Confirmation, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	MakeCreator(ctx context.Context, username string) (*Confirmation, error)
	MakeAdmin(ctx context.Context, username string) (*Confirmation, error)
}
