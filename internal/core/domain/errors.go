package domain

import (
	"errors"
	"strings"
)

// ErrorCode classifies a failed auth operation.
type ErrorCode string

const (
	CodeDuplicateUsername    ErrorCode = "duplicate_username"
	CodeCredentialValidation ErrorCode = "credential_validation"
	CodeInvalidCredentials   ErrorCode = "invalid_credentials"
	CodeUserNotFound         ErrorCode = "user_not_found"
)

// Violation is a single credential or profile rule that a registration broke.
type Violation struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// AuthError is the failure side of every AuthService operation.
// errors.Is matches any two AuthErrors that share a Code.
type AuthError struct {
	Code       ErrorCode
	Message    string
	Violations []Violation
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == e.Code
}

var (
	ErrDuplicateUsername    = &AuthError{Code: CodeDuplicateUsername, Message: "UserName Already Exist"}
	ErrCredentialValidation = &AuthError{Code: CodeCredentialValidation, Message: "User Creation Failed"}
	ErrInvalidCredentials   = &AuthError{Code: CodeInvalidCredentials, Message: "Invalid Credentials"}
	ErrUserNotFound         = &AuthError{Code: CodeUserNotFound, Message: "Invalid User Name"}
)

const creationFailedPrefix = "User Creation Failed Because: "

// NewCredentialValidationError folds violations into one readable message
// while keeping the structured list.
func NewCredentialValidationError(violations []Violation) *AuthError {
	var b strings.Builder
	b.WriteString(creationFailedPrefix)
	for _, v := range violations {
		b.WriteString(" # ")
		b.WriteString(v.Description)
	}
	return &AuthError{
		Code:       CodeCredentialValidation,
		Message:    b.String(),
		Violations: violations,
	}
}

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleExists         = errors.New("role already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidTokenConfig = errors.New("invalid token configuration")
)

// AsAuthError unwraps err into an *AuthError when it carries one.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
