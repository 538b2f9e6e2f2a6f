package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func TestResult(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"nil":        {nil, ResultSuccess},
		"auth":       {domain.ErrInvalidCredentials, "invalid_credentials"},
		"wrapped":    {fmt.Errorf("x: %w", domain.ErrDuplicateUsername), "duplicate_username"},
		"validation": {domain.NewCredentialValidationError(nil), "credential_validation"},
		"infra":      {errors.New("mongo down"), ResultError},
	}
	for name, tc := range cases {
		if got := Result(tc.err); got != tc.want {
			t.Fatalf("%s: Result() = %q, want %q", name, got, tc.want)
		}
	}
}
