// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"
)

// Provider-level authentication errors. The infrastructure implementation
// maps its wire-level failure codes onto these so the application layer
// never inspects provider responses directly.
var (
	// ErrInvalidCredentials is returned on a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyInUse is returned when signing up with a registered email.
	ErrEmailAlreadyInUse = errors.New("email already in use")
	// ErrWeakPassword is returned when the provider rejects the password strength.
	ErrWeakPassword = errors.New("password too weak")
)

// Authenticator is the identity provider collaborator: email+password
// sign-up/sign-in/sign-out plus an ongoing session-change event stream the
// session manager subscribes to. Provider-driven transitions (token expiry,
// remote revocation) arrive on Events independently of explicit calls.
type Authenticator interface {
	// SignUp creates a new remote identity with the given display name and
	// signs it in.
	SignUp(ctx context.Context, displayName, email, password string) (*entity.Identity, error)

	// SignIn authenticates an existing identity.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignOut ends the provider session for the given user. Callers must
	// clear their local state regardless of the returned error.
	SignOut(ctx context.Context, userID string) error

	// Events returns the session-change stream. The channel is closed when
	// the authenticator shuts down.
	Events() <-chan entity.SessionEvent

	// Close stops the background token refresher and closes Events.
	Close() error
}
