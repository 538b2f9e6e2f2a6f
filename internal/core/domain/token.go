package domain

import "time"

// TokenClaims are the assertions carried by a bearer token.
type TokenClaims struct {
	Username  string
	UserID    string
	TokenID   string
	FirstName string
	LastName  string
	Roles     []Role
	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasRole reports whether the token asserts role.
func (c *TokenClaims) HasRole(role Role) bool {
	return HasAnyRole(c.Roles, role)
}

// IssuedToken is a signed token plus the claims it was built from.
type IssuedToken struct {
	Value  string
	Claims TokenClaims
}
