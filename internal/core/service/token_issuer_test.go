package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func newTestIssuer(t *testing.T) *JWTIssuer {
	t.Helper()
	issuer, err := NewJWTIssuer(TokenConfig{Secret: testSecret, Issuer: "auth-service", Audience: "auth-clients"})
	if err != nil {
		t.Fatalf("NewJWTIssuer: %v", err)
	}
	return issuer
}

func TestNewJWTIssuer_RejectsBadConfig(t *testing.T) {
	cases := []TokenConfig{
		{Secret: "", Issuer: "i", Audience: "a"},
		{Secret: "short", Issuer: "i", Audience: "a"},
		{Secret: testSecret, Issuer: "", Audience: "a"},
		{Secret: testSecret, Issuer: "i", Audience: ""},
	}
	for _, cfg := range cases {
		if _, err := NewJWTIssuer(cfg); !errors.Is(err, domain.ErrInvalidTokenConfig) {
			t.Fatalf("expected ErrInvalidTokenConfig for %+v, got %v", cfg, err)
		}
	}
}

func TestJWTIssuer_Issue_FixedLifetimeAndWireClaims(t *testing.T) {
	issuer := newTestIssuer(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	tok, err := issuer.Issue(domain.TokenClaims{
		Username:  "alice",
		UserID:    "u-1",
		FirstName: "Alice",
		LastName:  "Liddell",
		Roles:     []domain.Role{domain.RoleCustomer, domain.RoleAdmin},
		ExpiresAt: fixed.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !tok.Claims.ExpiresAt.Equal(fixed.Add(time.Hour)) {
		t.Fatalf("expected expiry one hour after issuance, got %v", tok.Claims.ExpiresAt)
	}
	if tok.Claims.TokenID == "" {
		t.Fatalf("expected generated token id")
	}

	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.Value, raw); err != nil {
		t.Fatalf("parse unverified: %v", err)
	}
	if raw["unique_name"] != "alice" || raw["nameid"] != "u-1" {
		t.Fatalf("unexpected identity claims: %v", raw)
	}
	if raw["given_name"] != "Alice" || raw["family_name"] != "Liddell" {
		t.Fatalf("unexpected name claims: %v", raw)
	}
	if raw["iss"] != "auth-service" {
		t.Fatalf("unexpected issuer: %v", raw["iss"])
	}
	roles, ok := raw["role"].([]any)
	if !ok || len(roles) != 2 || roles[0] != "CUSTOMER" || roles[1] != "ADMIN" {
		t.Fatalf("unexpected role claim: %v", raw["role"])
	}
}

func TestJWTIssuer_Verify_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)
	tok, err := issuer.Issue(domain.TokenClaims{Username: "bob", UserID: "u-2", Roles: []domain.Role{domain.RoleCreator}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Verify(tok.Value)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "bob" || !claims.HasRole(domain.RoleCreator) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "auth-clients" {
		t.Fatalf("unexpected audience: %v", claims.Audience)
	}
}

func TestJWTIssuer_Verify_Expired(t *testing.T) {
	issuer := newTestIssuer(t)
	start := time.Now()
	issuer.now = func() time.Time { return start }
	tok, err := issuer.Issue(domain.TokenClaims{Username: "carol"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	issuer.now = func() time.Time { return start.Add(TokenLifetime + time.Minute) }
	if _, err := issuer.Verify(tok.Value); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTIssuer_Verify_RejectsForeignTokens(t *testing.T) {
	issuer := newTestIssuer(t)

	other, err := NewJWTIssuer(TokenConfig{Secret: testSecret + "-other", Issuer: "auth-service", Audience: "auth-clients"})
	if err != nil {
		t.Fatalf("NewJWTIssuer: %v", err)
	}
	wrongKey, _ := other.Issue(domain.TokenClaims{Username: "mallory"})

	wrongAud, err := NewJWTIssuer(TokenConfig{Secret: testSecret, Issuer: "auth-service", Audience: "someone-else"})
	if err != nil {
		t.Fatalf("NewJWTIssuer: %v", err)
	}
	otherAudience, _ := wrongAud.Issue(domain.TokenClaims{Username: "mallory"})

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"unique_name": "mallory",
		"iss":         "auth-service",
		"aud":         "auth-clients",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	for name, tok := range map[string]string{
		"wrong key":      wrongKey.Value,
		"wrong audience": otherAudience.Value,
		"alg none":       unsigned,
		"garbage":        "not-a-token",
	} {
		if _, err := issuer.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
