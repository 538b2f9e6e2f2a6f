package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// TokenLifetime is fixed; callers cannot ask for a different validity window.
const TokenLifetime = time.Hour

// MinSecretLength is the smallest HS256 key accepted, in bytes.
const MinSecretLength = 32

// TokenConfig holds the signing material shared with every token verifier.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// jwtClaims is the wire form of domain.TokenClaims.
type jwtClaims struct {
	Username  string        `json:"unique_name"`
	UserID    string        `json:"nameid"`
	FirstName string        `json:"given_name"`
	LastName  string        `json:"family_name"`
	Roles     []domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 bearer tokens.
type JWTIssuer struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTIssuer validates cfg once so a bad secret fails at startup rather than per request.
func NewJWTIssuer(cfg TokenConfig) (*JWTIssuer, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: secret must be at least %d bytes", domain.ErrInvalidTokenConfig, MinSecretLength)
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, fmt.Errorf("%w: issuer and audience are required", domain.ErrInvalidTokenConfig)
	}
	return &JWTIssuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		now:      time.Now,
	}, nil
}

// Issue signs claims. Issuer, audience and the validity window are always
// taken from the issuer's own configuration.
func (i *JWTIssuer) Issue(claims domain.TokenClaims) (*domain.IssuedToken, error) {
	now := i.now().UTC().Truncate(time.Second)
	if claims.TokenID == "" {
		claims.TokenID = uuid.NewString()
	}
	claims.Issuer = i.issuer
	claims.Audience = []string{i.audience}
	claims.IssuedAt = now
	claims.ExpiresAt = now.Add(TokenLifetime)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Username:  claims.Username,
		UserID:    claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Roles:     claims.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID,
			Issuer:    claims.Issuer,
			Audience:  jwt.ClaimStrings(claims.Audience),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := t.SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &domain.IssuedToken{Value: signed, Claims: claims}, nil
}

// Verify checks signature, algorithm, issuer, audience and expiry.
func (i *JWTIssuer) Verify(token string) (*domain.TokenClaims, error) {
	var c jwtClaims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	out := &domain.TokenClaims{
		Username:  c.Username,
		UserID:    c.UserID,
		TokenID:   c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Roles:     c.Roles,
		Issuer:    c.Issuer,
		Audience:  []string(c.Audience),
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
