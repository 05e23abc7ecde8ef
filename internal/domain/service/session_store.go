package service

import "cinelog/internal/domain/entity"

// SessionStore is the local persistent mirror: a single slot holding one
// serialized identity, written and erased in lockstep with session manager
// transitions. It is read once at startup as a warm-start hint only; it is
// never a trust source for authorization.
type SessionStore interface {
	// Load returns the mirrored identity, or nil when no mirror exists.
	Load() (*entity.Identity, error)

	// Save replaces the mirror with the given identity.
	Save(identity *entity.Identity) error

	// Clear erases the mirror. Clearing an absent mirror is not an error.
	Clear() error
}
