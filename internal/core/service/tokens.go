package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/pkg/token"
)

// DefaultTokenTTL matches the backend contract of 24-hour sessions.
const DefaultTokenTTL = 24 * time.Hour

// TokenClaims are the claims carried by an access token.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *TokenClaims) UserID() string { return c.Subject }

// JTI returns the unique token identifier used for revocation.
func (c *TokenClaims) JTI() string { return c.ID }

// TokenIssuer issues and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer. A zero ttl falls back to
// DefaultTokenTTL.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue creates a signed token for userID.
func (i *TokenIssuer) Issue(userID string) (string, *TokenClaims, error) {
	jti, err := token.GenerateWithLength(16)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse verifies a token string and returns its claims.
// Signature, algorithm, and expiry failures all map to ErrTokenInvalid.
func (i *TokenIssuer) Parse(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, domain.ErrTokenInvalid.WithCause(err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
