package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tok, err := IssueToken(testSecret, jwt.MapClaims{"sub": "alice@example.com", "purpose": "reset"}, time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims["sub"])
	assert.Equal(t, "reset", claims["purpose"])

	// exp was injected by the issuer and lies in the future.
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestVerifyTokenExpired(t *testing.T) {
	tok, err := IssueToken(testSecret, jwt.MapClaims{"sub": "alice@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenZeroTTLRejected(t *testing.T) {
	tok, err := IssueToken(testSecret, jwt.MapClaims{"sub": "alice@example.com"}, 0)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tok, err := IssueToken("other-secret", jwt.MapClaims{"sub": "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := VerifyToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	// alg=none tokens must never validate, whatever the claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw)
	assert.Error(t, err)
}

func TestIssueTokenDoesNotMutateCallerClaims(t *testing.T) {
	claims := jwt.MapClaims{"sub": "alice@example.com"}
	_, err := IssueToken(testSecret, claims, time.Hour)
	require.NoError(t, err)
	_, hasExp := claims["exp"]
	assert.False(t, hasExp)
}
