package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

const (
	msgSeedDone        = "Role Seeding Done Successfully"
	msgSeedAlreadyDone = "Roles Seeding is Already Done"
	msgUserCreated     = "UserName Created Successfully"
	msgNowCreator      = "User is now a CREATOR"
	msgNowAdmin        = "User is now an ADMIN"
)

// AuthService implements registration, login and role management.
// It holds no mutable state; every call goes straight to the stores.
type AuthService struct {
	users  ports.CredentialStore
	roles  ports.RoleStore
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.CredentialStore, roles ports.RoleStore, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, logger: logger}
}

// SeedRoles creates the three roles unless all of them already exist.
func (s *AuthService) SeedRoles(ctx context.Context) (*ports.SeedResult, error) {
	allExist := true
	for _, role := range domain.AllRoles() {
		exists, err := s.roles.RoleExists(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("seed roles: check %s: %w", role, err)
		}
		if !exists {
			allExist = false
		}
	}
	if allExist {
		return &ports.SeedResult{Message: msgSeedAlreadyDone}, nil
	}

	for _, role := range domain.AllRoles() {
		if err := s.roles.CreateRole(ctx, role); err != nil {
			return nil, fmt.Errorf("seed roles: create %s: %w", role, err)
		}
	}

	s.logger.Info().Msg("roles seeded")
	return &ports.SeedResult{Message: msgSeedDone, Created: true}, nil
}

// Register creates an account and grants it CUSTOMER.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Confirmation, error) {
	existing, err := s.users.FindByUsername(ctx, in.Username)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrDuplicateUsername
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	// Every account holds CUSTOMER from creation, so refuse before writing anything.
	seeded, err := s.roles.RoleExists(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("register: check %s: %w", domain.RoleCustomer, err)
	}
	if !seeded {
		return nil, fmt.Errorf("register: %s: %w", domain.RoleCustomer, domain.ErrRoleNotFound)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:      in.Username,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.users.Create(ctx, user, in.Password); err != nil {
		if _, ok := domain.AsAuthError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("register: create: %w", err)
	}

	if err := s.roles.AddToRole(ctx, user, domain.RoleCustomer); err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("user created without default role")
		return nil, fmt.Errorf("register: grant %s: %w", domain.RoleCustomer, err)
	}

	s.logger.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user registered")
	return &ports.Confirmation{Message: msgUserCreated}, nil
}

// Login verifies credentials and issues a token carrying the user's roles.
// An unknown username and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup: %w", err)
	}

	ok, err := s.users.CheckPassword(ctx, user, password)
	if err != nil {
		return nil, fmt.Errorf("login: check password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.roles.GetRoles(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login: roles: %w", err)
	}

	issued, err := s.tokens.Issue(domain.TokenClaims{
		Username:  user.Username,
		UserID:    user.ID,
		TokenID:   uuid.NewString(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     roles,
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("jti", issued.Claims.TokenID).Msg("token issued")
	return &ports.LoginResult{
		Token:     issued.Value,
		TokenID:   issued.Claims.TokenID,
		ExpiresAt: issued.Claims.ExpiresAt,
		Roles:     issued.Claims.Roles,
	}, nil
}

// MakeCreator grants CREATOR. Existing roles are kept.
func (s *AuthService) MakeCreator(ctx context.Context, username string) (*ports.Confirmation, error) {
	return s.promote(ctx, username, domain.RoleCreator, msgNowCreator)
}

// MakeAdmin grants ADMIN. Existing roles are kept.
func (s *AuthService) MakeAdmin(ctx context.Context, username string) (*ports.Confirmation, error) {
	return s.promote(ctx, username, domain.RoleAdmin, msgNowAdmin)
}

func (s *AuthService) promote(ctx context.Context, username string, role domain.Role, msg string) (*ports.Confirmation, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("grant %s: lookup: %w", role, err)
	}

	if err := s.roles.AddToRole(ctx, user, role); err != nil {
		return nil, fmt.Errorf("grant %s: %w", role, err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", role.String()).Msg("role granted")
	return &ports.Confirmation{Message: msg}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
