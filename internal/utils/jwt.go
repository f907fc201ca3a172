package utils // package utils provides helper functions for password hashing and tokens

import (
    "errors"  // sentinel error definitions
    "time"    // expiry calculations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Verification failures collapse to exactly one of these sentinels so
// callers can branch with errors.Is instead of inspecting library error
// chains. Anything that is not an expiry or signature failure is reported
// as malformed.
var (
    ErrTokenExpired          = errors.New("token expired")
    ErrTokenSignatureInvalid = errors.New("token signature invalid")
    ErrTokenMalformed        = errors.New("token malformed")
)

// IssueToken signs an HS256 JWT containing the caller's claims plus an
// injected expiry (exp = now + ttl) and issued-at (iat). The claims map is
// not mutated. The issuer is purpose-agnostic: a "purpose" claim, when the
// caller supplies one, is carried verbatim and checked by whoever verifies
// the token. Tokens are never stored server-side; validity is determined
// entirely by signature and expiry, so there is no revocation before exp.
func IssueToken(secret string, claims jwt.MapClaims, ttl time.Duration) (string, error) {
    now := time.Now().UTC()
    all := jwt.MapClaims{
        "exp": now.Add(ttl).Unix(),
        "iat": now.Unix(),
    }
    for k, v := range claims {
        all[k] = v
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, all)
    return t.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token string, returning its claims.
// It checks the HMAC signature and that exp is in the future. Failures map
// to ErrTokenExpired, ErrTokenSignatureInvalid or ErrTokenMalformed; the
// function never panics on attacker-controlled input.
func VerifyToken(secret, raw string) (jwt.MapClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject any signing method other than HMAC before touching the key.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenSignatureInvalid
        }
        return []byte(secret), nil
    }, jwt.WithExpirationRequired())
    if err != nil {
        switch {
        case errors.Is(err, jwt.ErrTokenExpired):
            return nil, ErrTokenExpired
        case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignatureInvalid):
            return nil, ErrTokenSignatureInvalid
        default:
            return nil, ErrTokenMalformed
        }
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok || !tok.Valid {
        return nil, ErrTokenMalformed
    }
    return claims, nil
}
