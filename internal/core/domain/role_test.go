package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"CUSTOMER": RoleCustomer,
		"creator":  RoleCreator,
		" Admin ":  RoleAdmin,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestAllRoles_ClosedSet(t *testing.T) {
	roles := AllRoles()
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
	for _, r := range roles {
		if !r.Valid() {
			t.Fatalf("role %s reported invalid", r)
		}
	}
	if Role("GUEST").Valid() {
		t.Fatalf("GUEST must not be a valid role")
	}
}

func TestSortRoles(t *testing.T) {
	got := SortRoles([]Role{RoleAdmin, RoleCustomer, RoleAdmin, RoleCreator})
	want := []Role{RoleCustomer, RoleCreator, RoleAdmin}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestHasAnyRole(t *testing.T) {
	held := []Role{RoleCustomer, RoleCreator}
	if !HasAnyRole(held, RoleAdmin, RoleCreator) {
		t.Fatalf("expected match on CREATOR")
	}
	if HasAnyRole(held, RoleAdmin) {
		t.Fatalf("unexpected ADMIN match")
	}
	if HasAnyRole(nil, RoleCustomer) {
		t.Fatalf("empty role set must not match")
	}
}

func TestAuthError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", NewCredentialValidationError([]Violation{
		{Code: "PasswordTooShort", Description: "Passwords must be at least 6 characters."},
	}))
	if !errors.Is(wrapped, ErrCredentialValidation) {
		t.Fatalf("expected wrapped validation error to match sentinel")
	}
	if errors.Is(wrapped, ErrDuplicateUsername) {
		t.Fatalf("validation error must not match duplicate username")
	}

	ae, ok := AsAuthError(wrapped)
	if !ok {
		t.Fatalf("expected AsAuthError to unwrap")
	}
	if len(ae.Violations) != 1 || ae.Violations[0].Code != "PasswordTooShort" {
		t.Fatalf("unexpected violations: %+v", ae.Violations)
	}
}

func TestNewCredentialValidationError_Message(t *testing.T) {
	err := NewCredentialValidationError([]Violation{
		{Code: "A", Description: "first."},
		{Code: "B", Description: "second."},
	})
	want := "User Creation Failed Because:  # first. # second."
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
