package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator decides whether an access token can still be used.
type TokenValidator interface {
	IsValid(token string) bool
}

// TokenValidatorFunc adapts a plain function to TokenValidator.
type TokenValidatorFunc func(token string) bool

func (f TokenValidatorFunc) IsValid(token string) bool { return f(token) }

// JWTValidator checks the exp claim of a JWT access token. The signature is
// not verified: the client has no key, and the server re-checks every request.
type JWTValidator struct {
	leeway time.Duration
	now    func() time.Time
}

// NewJWTValidator treats tokens expiring within leeway as already expired.
func NewJWTValidator(leeway time.Duration) *JWTValidator {
	return &JWTValidator{leeway: leeway, now: time.Now}
}

// IsValid reports whether token is a well-formed JWT whose exp lies beyond
// now+leeway. Tokens without exp are rejected.
func (v *JWTValidator) IsValid(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Time.After(v.now().Add(v.leeway))
}
