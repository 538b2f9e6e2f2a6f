package identity

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const allowedUsernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"

// UserValidator checks profile fields before an account is persisted.
type UserValidator struct {
	v *validator.Validate
}

func NewUserValidator() *UserValidator {
	return &UserValidator{v: validator.New()}
}

func (uv *UserValidator) Validate(user *domain.User) []domain.Violation {
	var out []domain.Violation

	if user.Username == "" || strings.IndexFunc(user.Username, func(r rune) bool {
		return !strings.ContainsRune(allowedUsernameChars, r)
	}) >= 0 {
		out = append(out, domain.Violation{
			Code:        "InvalidUserName",
			Description: fmt.Sprintf("Username '%s' is invalid, can only contain letters or digits.", user.Username),
		})
	}

	if user.Email != "" {
		if err := uv.v.Var(user.Email, "email"); err != nil {
			out = append(out, domain.Violation{
				Code:        "InvalidEmail",
				Description: fmt.Sprintf("Email '%s' is invalid.", user.Email),
			})
		}
	}
	return out
}
