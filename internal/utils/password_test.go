package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Password1!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.True(t, VerifyPassword(hash, "Password1!"))
	assert.False(t, VerifyPassword(hash, "Password2!"))
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "two hashes of the same input must differ")
	assert.True(t, VerifyPassword(h1, "same-input"))
	assert.True(t, VerifyPassword(h2, "same-input"))
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"sentinel":         "google_oauth",
		"bcrypt":           "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		"wrong algo":       "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"wrong version":    "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"bad params":       "$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA",
		"zero params":      "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA",
		"bad salt b64":     "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
		"bad hash b64":     "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$!!!",
		"truncated":        "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA",
		"random plaintext": "not a hash at all",
	}
	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, VerifyPassword(encoded, "anything"))
		})
	}
}
