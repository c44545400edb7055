// Package identity is the client side of the external identity provider.
// Credential exchange (email/password, Google consent) happens entirely at
// the provider; this package only turns the bearer token a client presents
// into the provider-assigned user id and display metadata.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned when no valid identity can be derived from
// the presented token.
var ErrUnauthenticated = errors.New("unauthenticated")

// User is the authenticated identity attached to a request. ID is the
// provider's opaque user id and is the key for the profile document.
type User struct {
	ID    string
	Name  string
	Email string
}

// Verifier resolves a bearer token to the user it was issued for.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}
