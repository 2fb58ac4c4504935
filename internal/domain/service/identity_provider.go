package service

import (
	"context"
	"errors"
)

// ErrIdentityNotFound is returned by DeleteIdentity when the provider has no
// record for the uid, and by VerifyToken when the token's subject is gone.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrEmailExists is returned by CreateIdentity when the email is already
// registered with the provider.
var ErrEmailExists = errors.New("email already exists")

// IdentityProvider defines the interface for the external authentication
// system that owns credentials. Profiles live in the local store; the
// provider only knows uid, email and password.
type IdentityProvider interface {
	// CreateIdentity registers a new identity and returns the provider's uid.
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)

	// DeleteIdentity removes an identity by uid. Used to compensate a failed
	// registration so the email does not stay claimed.
	DeleteIdentity(ctx context.Context, uid string) error

	// VerifyToken validates a bearer token and returns the uid it was
	// issued for.
	VerifyToken(ctx context.Context, token string) (string, error)
}
