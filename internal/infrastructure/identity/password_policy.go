package identity

import (
	"fmt"
	"unicode/utf8"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// maxPasswordBytes is bcrypt's input limit. RequiredLength counts characters instead.
const maxPasswordBytes = 72

// PasswordPolicy describes the complexity rules applied on registration.
type PasswordPolicy struct {
	RequiredLength         int
	RequiredUniqueChars    int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

// DefaultPasswordPolicy mirrors the common identity-framework defaults.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		RequiredLength:         6,
		RequiredUniqueChars:    1,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
	}
}

// Validate returns every rule password breaks, in a stable order.
func (p PasswordPolicy) Validate(password string) []domain.Violation {
	var out []domain.Violation

	if utf8.RuneCountInString(password) < p.RequiredLength {
		out = append(out, domain.Violation{
			Code:        "PasswordTooShort",
			Description: fmt.Sprintf("Passwords must be at least %d characters.", p.RequiredLength),
		})
	}
	if len(password) > maxPasswordBytes {
		out = append(out, domain.Violation{
			Code:        "PasswordTooLong",
			Description: fmt.Sprintf("Passwords must be at most %d bytes.", maxPasswordBytes),
		})
	}

	var hasDigit, hasLower, hasUpper, hasOther bool
	unique := make(map[rune]struct{})
	for _, c := range password {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		default:
			hasOther = true
		}
		unique[c] = struct{}{}
	}

	if p.RequireNonAlphanumeric && !hasOther {
		out = append(out, domain.Violation{
			Code:        "PasswordRequiresNonAlphanumeric",
			Description: "Passwords must have at least one non alphanumeric character.",
		})
	}
	if p.RequireDigit && !hasDigit {
		out = append(out, domain.Violation{
			Code:        "PasswordRequiresDigit",
			Description: "Passwords must have at least one digit ('0'-'9').",
		})
	}
	if p.RequireLowercase && !hasLower {
		out = append(out, domain.Violation{
			Code:        "PasswordRequiresLower",
			Description: "Passwords must have at least one lowercase ('a'-'z').",
		})
	}
	if p.RequireUppercase && !hasUpper {
		out = append(out, domain.Violation{
			Code:        "PasswordRequiresUpper",
			Description: "Passwords must have at least one uppercase ('A'-'Z').",
		})
	}
	if p.RequiredUniqueChars > 1 && len(unique) < p.RequiredUniqueChars {
		out = append(out, domain.Violation{
			Code:        "PasswordRequiresUniqueChars",
			Description: fmt.Sprintf("Passwords must use at least %d different characters.", p.RequiredUniqueChars),
		})
	}
	return out
}
