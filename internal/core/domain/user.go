package domain

import (
	"strings"
	"time"
)

// User models a registered account.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PasswordHash  string    `json:"-"`
	SecurityStamp string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NormalizeUsername is the key used for uniqueness and lookups,
// so "Alice" and "alice" name the same account.
func NormalizeUsername(username string) string {
	return strings.ToUpper(username)
}
