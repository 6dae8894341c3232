package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTValidator_IsValid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u"}).
		SignedString([]byte("k"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		leeway time.Duration
		want   bool
	}{
		{name: "expires in an hour", token: signedToken(t, now.Add(time.Hour)), want: true},
		{name: "expired a minute ago", token: signedToken(t, now.Add(-time.Minute)), want: false},
		{name: "inside leeway counts as expired", token: signedToken(t, now.Add(20*time.Second)), leeway: 30 * time.Second, want: false},
		{name: "outside leeway is valid", token: signedToken(t, now.Add(time.Minute)), leeway: 30 * time.Second, want: true},
		{name: "no exp claim", token: noExp, want: false},
		{name: "garbage", token: "not.a.jwt", want: false},
		{name: "empty", token: "  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewJWTValidator(tt.leeway)
			v.now = func() time.Time { return now }
			assert.Equal(t, tt.want, v.IsValid(tt.token))
		})
	}
}

func TestJWTValidator_IgnoresSignatureKey(t *testing.T) {
	v := NewJWTValidator(0)
	tok := signedToken(t, time.Now().Add(time.Hour))
	assert.True(t, v.IsValid(tok))
}
