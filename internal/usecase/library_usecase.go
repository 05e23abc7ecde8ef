package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// LibraryUsecase owns the signed-in user's favorites set, watchlist set and
// reviews collection. All three live in memory for the current identity
// only; switching identity discards and reloads them. Mutations are
// two-phase: the remote write runs first and the local collection is
// touched only after it succeeds, so a remote failure leaves local state
// unchanged. There is no transaction across the two phases; concurrent
// toggles on the same movie resolve by the store's last-write-wins.
//
// Every mutation fails with ErrNotAuthenticated when no identity is active.
type LibraryUsecase interface {
	// Favorites returns a snapshot of the favorites collection.
	Favorites() []*entity.MovieSummary

	// Watchlist returns a snapshot of the watchlist collection.
	Watchlist() []*entity.MovieSummary

	// Reviews returns a snapshot of the user's reviews, newest first.
	Reviews() []*entity.Review

	// LoadAll fetches the three collections for the current identity and
	// replaces local state wholesale. Invoked automatically on every
	// sign-in observed from the session manager.
	LoadAll(ctx context.Context) error

	// ToggleFavorite flips membership for the movie and reports the new
	// membership state. Calling twice returns to the original state.
	ToggleFavorite(ctx context.Context, movie entity.MovieSummary) (bool, error)

	// ToggleWatchlist flips watchlist membership for the movie.
	ToggleWatchlist(ctx context.Context, movie entity.MovieSummary) (bool, error)

	// IsFavorite answers from the local cache only.
	IsFavorite(movieID int64) bool

	// IsInWatchlist answers from the local cache only.
	IsInWatchlist(movieID int64) bool

	// AddReview creates the user's review for a movie. If one already
	// exists for the (user, movie) pair it transparently becomes an update
	// of that review; a duplicate is never created.
	AddReview(ctx context.Context, movieID int64, rating int, comment string) (*entity.Review, error)

	// UpdateReview rewrites rating and comment of an owned review. The
	// caller owns the ID; ownership is not re-validated against the store.
	UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*entity.Review, error)

	// DeleteReview removes the review remotely, then locally.
	DeleteReview(ctx context.Context, reviewID string) error

	// GetMovieReviews returns locally-held reviews for the movie. The local
	// cache is scoped to the current user; use MovieReviews for the
	// cross-user feed.
	GetMovieReviews(movieID int64) []*entity.Review

	// GetUserReview returns the current user's review for the movie, if any.
	GetUserReview(movieID int64) (*entity.Review, bool)

	// MovieReviews fetches the cross-user review feed for a movie straight
	// from the store, bypassing the local cache.
	MovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error)

	// Close stops the session event pump.
	Close() error
}
