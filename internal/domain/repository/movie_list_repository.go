// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"
)

// ErrEntryNotFound is a domain-specific error returned when a list entry is not found.
var ErrEntryNotFound = errors.New("list entry not found")

// MovieListRepository defines the standard operations for one user-owned
// movie collection (favorites or watchlist). The document store keys each
// entry by the composite (userID, movieID); at most one entry exists per
// pair. The application layer depends on this interface, not the concrete
// implementation; favorites and watchlist are two instances of it bound to
// different collections.
type MovieListRepository interface {
	// ListByUser retrieves every entry owned by the given user.
	ListByUser(ctx context.Context, userID string) ([]*entity.MovieListEntry, error)

	// Put inserts the entry keyed by (entry.UserID, entry.Movie.ID),
	// overwriting any existing document for the pair.
	Put(ctx context.Context, entry *entity.MovieListEntry) error

	// Delete removes the entry for the pair, returning ErrEntryNotFound
	// when no document exists for it.
	Delete(ctx context.Context, userID string, movieID int64) error
}
