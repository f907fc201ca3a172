// Package repository defines error types that are reused across the
// repository layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. For example, ErrEmailExists signals
// that an insert hit the unique index on users.email, while
// ErrUserNotFound indicates that a lookup or update matched no row.
package repository

import "errors"

// ErrEmailExists is returned when creating a user with an email address
// that is already registered. Handlers should translate this into an
// HTTP 400 response with a generic message.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup or update matches no
// record. Handlers decide per endpoint whether the absence may be
// revealed to the client.
var ErrUserNotFound = errors.New("user not found")
