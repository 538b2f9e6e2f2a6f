package ports

import "github.com/99minutos/auth-service/internal/core/domain"

// TokenIssuer signs claims into a bearer token.
type TokenIssuer interface {
	Issue(claims domain.TokenClaims) (*domain.IssuedToken, error)
}

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// PasswordHasher turns plaintext passwords into opaque hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
