// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity represents the authenticated account for the current session.
// It is created on successful authentication, immutable for the lifetime
// of a session, and discarded on sign-out.
type Identity struct {
	ID          string `json:"id"`          // Opaque, provider-assigned user ID.
	DisplayName string `json:"displayName"` // The name shown on reviews and the profile screen.
	Email       string `json:"email"`       // May be empty when the provider withholds it.
}

// SessionState enumerates the session manager's states.
type SessionState int

const (
	// Unauthenticated means no identity is active.
	Unauthenticated SessionState = iota
	// Authenticating means a sign-in or sign-up round-trip is in flight.
	Authenticating
	// Authenticated means exactly one identity is active.
	Authenticated
)

func (s SessionState) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// SessionEventType distinguishes session change notifications.
type SessionEventType int

const (
	// SessionSignedIn fires on every transition into Authenticated.
	SessionSignedIn SessionEventType = iota
	// SessionSignedOut fires on every transition into Unauthenticated,
	// including provider-driven ones such as token expiry.
	SessionSignedOut
)

// SessionEvent notifies observers of an identity change.
// Identity is nil for SessionSignedOut events.
type SessionEvent struct {
	Type     SessionEventType
	Identity *Identity
}
