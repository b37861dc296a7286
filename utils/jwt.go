package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// TokenClaims is what the backend puts in its access tokens. The subject
// carries the username.
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeTokenClaims reads the claims of a backend token. The signing secret
// lives on the backend, so the signature is not verified here; the backend
// still rejects forged tokens on every call.
func DecodeTokenClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	claims.Role = strings.TrimPrefix(strings.ToUpper(claims.Role), "ROLE_")
	return claims, nil
}

// Expired reports whether the claims carry an expiry at or before now.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}
