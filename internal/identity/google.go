// Package identity verifies federated identity assertions. Google is
// currently the only supported provider. Signature and audience checks are
// delegated to the provider library, which fetches and caches Google's
// public keys.
package identity

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// ErrInvalidGoogleToken is the single error surfaced for any verification
// failure: bad signature, wrong audience, expired or malformed token. The
// sub-reason is deliberately not exposed so handlers cannot leak
// verification internals to clients.
var ErrInvalidGoogleToken = errors.New("invalid google token")

// Identity holds the claims extracted from a verified ID token.
type Identity struct {
	Email string
	Name  string
}

// Verifier validates a raw ID token string and extracts identity claims.
type Verifier interface {
	Verify(ctx context.Context, rawIDToken string) (Identity, error)
}

// GoogleVerifier verifies Google-issued ID tokens against a configured
// OAuth client ID (the expected audience).
type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

// Verify validates the token signature, audience and expiry, and returns
// the email and name claims. A missing name claim falls back to
// "Google User".
func (v *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (Identity, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, v.ClientID)
	if err != nil {
		return Identity{}, ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return Identity{}, ErrInvalidGoogleToken
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Google User"
	}
	return Identity{Email: email, Name: name}, nil
}
