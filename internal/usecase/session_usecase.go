// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// SessionUsecase owns the current authenticated identity. It is the leaf
// dependency for everything else: the library manager observes it and the
// delivery layer gates mutating routes on it.
//
// State machine: Unauthenticated -> Authenticating -> Authenticated.
// Failed sign-in/sign-up calls return the manager to its pre-call state;
// it is never left in Authenticating. Every transition into Authenticated
// writes the identity to the persistent mirror, every transition into
// Unauthenticated erases it.
type SessionUsecase interface {
	// SignUp creates a new remote identity and treats it like a sign-in.
	SignUp(ctx context.Context, input SignUpInput) (*entity.Identity, error)

	// SignIn authenticates against the identity provider.
	SignIn(ctx context.Context, input SignInInput) (*entity.Identity, error)

	// SignOut clears local session state unconditionally, even when the
	// remote call fails; the remote error is still returned.
	SignOut(ctx context.Context) error

	// Current returns the active identity, or nil.
	Current() *entity.Identity

	// State reports the state machine's current state.
	State() entity.SessionState

	// Subscribe registers an observer of identity changes. Events fire on
	// explicit calls and on provider-driven transitions alike.
	Subscribe() <-chan entity.SessionEvent

	// Close stops the provider event pump and closes subscriber channels.
	Close() error
}
