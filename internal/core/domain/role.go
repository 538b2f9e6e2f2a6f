package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Role is one of the three permission tiers. The set is closed.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleCreator  Role = "CREATOR"
	RoleAdmin    Role = "ADMIN"
)

// rank orders roles from least to most privileged.
var rank = map[Role]int{
	RoleCustomer: 1,
	RoleCreator:  2,
	RoleAdmin:    3,
}

// AllRoles returns every role in seeding order.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleCreator, RoleAdmin}
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

func (r Role) String() string { return string(r) }

// ParseRole maps a case-insensitive name onto a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// SortRoles orders roles by privilege, lowest first, and drops duplicates.
func SortRoles(roles []Role) []Role {
	seen := make(map[Role]struct{}, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// HasAnyRole reports whether held contains at least one of wanted.
func HasAnyRole(held []Role, wanted ...Role) bool {
	for _, h := range held {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
