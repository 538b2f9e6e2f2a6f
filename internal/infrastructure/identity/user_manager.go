package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// UserManager is the credential store: it validates, hashes and persists accounts.
type UserManager struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	policy    PasswordPolicy
	validator *UserValidator
	now       func() time.Time
}

func NewUserManager(repo ports.UserRepository, hasher ports.PasswordHasher, policy PasswordPolicy) *UserManager {
	return &UserManager{
		repo:      repo,
		hasher:    hasher,
		policy:    policy,
		validator: NewUserValidator(),
		now:       time.Now,
	}
}

func (m *UserManager) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.repo.FindByUsername(ctx, username)
}

// Create fills in ID, stamp and timestamps when missing, so user is usable by the caller afterwards.
func (m *UserManager) Create(ctx context.Context, user *domain.User, password string) error {
	violations := m.validator.Validate(user)
	violations = append(violations, m.policy.Validate(password)...)
	if len(violations) > 0 {
		return domain.NewCredentialValidationError(violations)
	}

	hash, err := m.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := m.now().UTC()
	user.PasswordHash = hash
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.SecurityStamp == "" {
		user.SecurityStamp = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if err := m.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (m *UserManager) CheckPassword(_ context.Context, user *domain.User, password string) (bool, error) {
	if user == nil || user.PasswordHash == "" {
		return false, nil
	}
	return m.hasher.Compare(user.PasswordHash, password)
}

var _ ports.CredentialStore = (*UserManager)(nil)
