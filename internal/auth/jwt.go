// Package auth validates the access tokens minted by the user service and
// exposes the caller's identity to handlers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relance-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var (
	ErrExpiredToken    = errors.New("token expired")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
	ErrMissingSubject  = errors.New("token has no subject")
)

// Claims are the fields relance reads from a user service token
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Validator checks HS256 tokens against the shared secret
type Validator struct {
	secret []byte
	logger *observability.Logger
}

func NewValidator(secret string, logger *observability.Logger) *Validator {
	return &Validator{secret: []byte(secret), logger: logger}
}

// ValidateJWTToken parses token and returns its claims
func (v *Validator) ValidateJWTToken(ctx context.Context, token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			v.logger.InfoWithError(ctx, "token expired", err)
			return Claims{}, ErrExpiredToken
		}
		v.logger.InfoWithError(ctx, "failed to parse token", err)
		return Claims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return Claims{}, ErrInvalidJWTToken
	}
	if claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}
	return claims, nil
}

// GenerateToken signs a token for subject. Used by tests and operational tooling.
func (v *Validator) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
