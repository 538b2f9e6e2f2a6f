package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func constraintViolation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// uniqueError returns onDuplicate when err is a unique violation.
func uniqueError(err, onDuplicate error, op string) error {
	if _, ok := constraintViolation(err, uniqueViolation); ok {
		return onDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// assignError names the missing side of a user_roles foreign key.
func assignError(err error) error {
	if name, ok := constraintViolation(err, foreignKeyViolation); ok {
		switch name {
		case fkUserRolesRole:
			return domain.ErrRoleNotFound
		case fkUserRolesUser:
			return domain.ErrUserNotFound
		}
	}
	return fmt.Errorf("assign role: %w", err)
}
