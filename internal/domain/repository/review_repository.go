// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// ListByUser retrieves the user's reviews ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]*entity.Review, error)

	// ListByMovie retrieves all reviews for a movie across users, ordered by
	// creation time descending. Used for the cross-user display split; the
	// library manager's local cache never holds these.
	ListByMovie(ctx context.Context, movieID int64) ([]*entity.Review, error)

	// Create persists a new review and returns the store-assigned document ID.
	Create(ctx context.Context, review *entity.Review) (string, error)

	// Update rewrites the rating and comment of an existing review and
	// stamps the server-side update time.
	Update(ctx context.Context, reviewID string, rating int, comment string) error

	// Delete removes a review by ID.
	Delete(ctx context.Context, reviewID string) error
}
