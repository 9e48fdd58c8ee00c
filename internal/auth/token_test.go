package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("s3cret", 15)
	token, expiresAt, err := tm.GenerateToken("people-ops")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "people-ops", claims.Subject)
	assert.Equal(t, ScopeMatches, claims.Scope)
}

func TestTokenRejections(t *testing.T) {
	tm := NewTokenManager("s3cret", 0)

	_, _, err := tm.GenerateToken("")
	assert.Error(t, err)

	other, _, err := NewTokenManager("different", 5).GenerateToken("x")
	require.NoError(t, err)
	_, err = tm.ParseToken(other)
	assert.Error(t, err)

	unscoped, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = tm.ParseToken(unscoped)
	assert.Error(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Scope: ScopeMatches,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "x",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = tm.ParseToken(expired)
	assert.Error(t, err)
}
