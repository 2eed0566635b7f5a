package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return token
}

func TestExpired(t *testing.T) {
	now := time.Now()

	expired := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	assert.True(t, Expired(expired, now))

	live := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	assert.False(t, Expired(live, now))
}

func TestExpired_NoExpClaimGoesToBackend(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})
	assert.False(t, Expired(token, time.Now()))
}

func TestExpired_OpaqueTokenGoesToBackend(t *testing.T) {
	assert.False(t, Expired("not-a-jwt", time.Now()))
	assert.False(t, Expired("", time.Now()))
}

func TestSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})
	assert.Equal(t, "7", Subject(token))

	assert.Empty(t, Subject("not-a-jwt"))
}
