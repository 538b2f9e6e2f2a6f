package identity

import (
	"strings"
	"testing"
)

func violationCodes(t *testing.T, password string, p PasswordPolicy) []string {
	t.Helper()
	var codes []string
	for _, v := range p.Validate(password) {
		codes = append(codes, v.Code)
	}
	return codes
}

func TestPasswordPolicy_DefaultAcceptsStrongPassword(t *testing.T) {
	if got := DefaultPasswordPolicy().Validate("Pass123!"); len(got) != 0 {
		t.Fatalf("expected no violations, got %+v", got)
	}
}

func TestPasswordPolicy_ReportsEveryViolation(t *testing.T) {
	got := violationCodes(t, "abc", DefaultPasswordPolicy())
	want := []string{"PasswordTooShort", "PasswordRequiresNonAlphanumeric", "PasswordRequiresDigit", "PasswordRequiresUpper"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPasswordPolicy_TooLongForBcrypt(t *testing.T) {
	got := violationCodes(t, "Aa1!"+strings.Repeat("x", 80), DefaultPasswordPolicy())
	if len(got) != 1 || got[0] != "PasswordTooLong" {
		t.Fatalf("expected PasswordTooLong only, got %v", got)
	}
}

func TestPasswordPolicy_UniqueChars(t *testing.T) {
	p := PasswordPolicy{RequiredLength: 4, RequiredUniqueChars: 3}
	if got := violationCodes(t, "aaaa", p); len(got) != 1 || got[0] != "PasswordRequiresUniqueChars" {
		t.Fatalf("expected PasswordRequiresUniqueChars, got %v", got)
	}
	if got := violationCodes(t, "abca", p); len(got) != 0 {
		t.Fatalf("expected no violations, got %v", got)
	}
}

func TestPasswordPolicy_Relaxed(t *testing.T) {
	p := PasswordPolicy{RequiredLength: 1}
	if got := p.Validate("x"); len(got) != 0 {
		t.Fatalf("expected no violations, got %+v", got)
	}
}

func TestPasswordPolicy_LengthCountsCharacters(t *testing.T) {
	// "éé1A!" is 7 bytes but only 5 characters.
	codes := violationCodes(t, "éé1A!", DefaultPasswordPolicy())
	if len(codes) == 0 || codes[0] != "PasswordTooShort" {
		t.Fatalf("expected PasswordTooShort first, got %v", codes)
	}

	if codes := violationCodes(t, "éé1Aa!", DefaultPasswordPolicy()); len(codes) != 0 {
		t.Fatalf("six characters should satisfy the minimum, got %v", codes)
	}
}
