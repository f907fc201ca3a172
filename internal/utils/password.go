package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for new hashes. Verification reads the
// parameters back out of the encoded hash, so these can change without
// invalidating stored credentials.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword hashes a plaintext password with Argon2id and a fresh random
// salt, returning a PHC-encoded string of the form
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>. Hashing the same input
// twice yields different outputs.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword reports whether plain matches the PHC-encoded Argon2id
// hash. It returns false for anything that is not a well-formed hash,
// including the "google_oauth" sentinel stored on federation-only accounts,
// so those accounts can never authenticate through the password path.
func VerifyPassword(encoded, plain string) bool {
	var parts [6]string
	n, start := 0, 0
	for i := 0; i < len(encoded) && n < 5; i++ {
		if encoded[i] == '$' {
			parts[n] = encoded[start:i]
			n++
			start = i + 1
		}
	}
	parts[n] = encoded[start:]
	if n != 5 || parts[0] != "" || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return false
	}
	if mem == 0 || iters == 0 || par == 0 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(plain), salt, iters, mem, par, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
