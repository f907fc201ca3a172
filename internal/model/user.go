package model

import "time"

// GoogleOAuthSentinel is stored in users.hashed_password for accounts that
// were created through Google sign-in and have no local password. It is not
// a valid Argon2id hash, so password verification against it always fails;
// such accounts can only authenticate through the federated path.
const GoogleOAuthSentinel = "google_oauth"

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column. The json tags are omitted
// because these structs are used internally by the repository layer;
// handlers define separate response types with appropriate JSON tags.
//
// Fields:
//  ID             – primary key identifier of the user.
//  FullName       – display name shown to the user.
//  Email          – unique email address, the login key. Immutable once set.
//  HashedPassword – PHC-encoded Argon2id hash, or GoogleOAuthSentinel.
//  IsActive       – whether the account is active (reserved, not gated on).
//  TermsAccepted  – whether the user accepted the terms at registration.
//  CreatedAt      – timestamp of creation.
//  UpdatedAt      – timestamp of last update.
type User struct {
    ID             uint64    // users.id
    FullName       string    // users.full_name
    Email          string    // users.email
    HashedPassword string    // users.hashed_password
    IsActive       bool      // users.is_active
    TermsAccepted  bool      // users.terms_accepted
    CreatedAt      time.Time // users.created_at
    UpdatedAt      time.Time // users.updated_at
}

// FederatedOnly reports whether this account authenticates exclusively via
// Google sign-in.
func (u User) FederatedOnly() bool {
    return u.HashedPassword == GoogleOAuthSentinel
}
