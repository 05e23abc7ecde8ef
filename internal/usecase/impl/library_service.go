package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loadTimeout bounds the automatic collection reload triggered by a
// session event, which runs outside any request context.
const loadTimeout = 30 * time.Second

// LibraryParams defines the dependencies of the library service.
type LibraryParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Favorites repository.MovieListRepository `name:"favorites"`
	Watchlist repository.MovieListRepository `name:"watchlist"`
	Reviews   repository.ReviewRepository
	Logger    *slog.Logger
}

// libraryService implements the LibraryUsecase interface. It exclusively
// owns the in-memory collections for the currently signed-in user; no
// external writer touches them.
type libraryService struct {
	session   usecase.SessionUsecase
	favorites repository.MovieListRepository
	watchlist repository.MovieListRepository
	reviews   repository.ReviewRepository
	validate  *validator.Validate
	logger    *slog.Logger

	mu           sync.RWMutex
	favoriteList []*entity.MovieSummary
	watchList    []*entity.MovieSummary
	reviewList   []*entity.Review

	pumpDone chan struct{}
}

// NewLibraryService is the constructor for libraryService. It subscribes to
// the session manager and keeps the collections in lockstep with identity
// changes: full reload on sign-in, wholesale clear on sign-out.
func NewLibraryService(params LibraryParams) usecase.LibraryUsecase {
	srv := &libraryService{
		session:   params.Session,
		favorites: params.Favorites,
		watchlist: params.Watchlist,
		reviews:   params.Reviews,
		validate:  validator.New(),
		logger:    params.Logger,
		pumpDone:  make(chan struct{}),
	}

	go srv.pumpSessionEvents(params.Session.Subscribe())

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// identity resolves the active identity or fails with ErrNotAuthenticated.
func (srv *libraryService) identity() (*entity.Identity, error) {
	identity := srv.session.Current()
	if identity == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return identity, nil
}

// Favorites returns a snapshot of the favorites collection.
func (srv *libraryService) Favorites() []*entity.MovieSummary {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.MovieSummary, len(srv.favoriteList))
	copy(out, srv.favoriteList)

	return out
}

// Watchlist returns a snapshot of the watchlist collection.
func (srv *libraryService) Watchlist() []*entity.MovieSummary {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.MovieSummary, len(srv.watchList))
	copy(out, srv.watchList)

	return out
}

// Reviews returns a snapshot of the user's reviews, newest first.
func (srv *libraryService) Reviews() []*entity.Review {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.Review, len(srv.reviewList))
	copy(out, srv.reviewList)

	return out
}

// LoadAll fetches favorites, watchlist and reviews for the current identity
// and replaces the local collections wholesale. There is no incremental
// merge; the remote store is the source of truth.
func (srv *libraryService) LoadAll(ctx context.Context) error {
	identity, err := srv.identity()
	if err != nil {
		return err
	}
	srv.log(ctx).Debug("Loading library", slog.String("user_id", identity.ID))

	favoriteEntries, err := srv.favorites.ListByUser(ctx, identity.ID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteUnavailable, "load favorites failed")
	}

	watchlistEntries, err := srv.watchlist.ListByUser(ctx, identity.ID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteUnavailable, "load watchlist failed")
	}

	reviews, err := srv.reviews.ListByUser(ctx, identity.ID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteUnavailable, "load reviews failed")
	}

	// The store query orders by creation time descending already; keep the
	// invariant locally regardless of backend behavior.
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	srv.mu.Lock()
	srv.favoriteList = summaries(favoriteEntries)
	srv.watchList = summaries(watchlistEntries)
	srv.reviewList = reviews
	srv.mu.Unlock()

	srv.log(ctx).Info("Library loaded",
		slog.String("user_id", identity.ID),
		slog.Int("favorites", len(favoriteEntries)),
		slog.Int("watchlist", len(watchlistEntries)),
		slog.Int("reviews", len(reviews)))

	return nil
}

// ToggleFavorite flips favorites membership for the movie.
func (srv *libraryService) ToggleFavorite(ctx context.Context, movie entity.MovieSummary) (bool, error) {
	return srv.toggle(ctx, srv.favorites, &srv.favoriteList, movie, "favorite")
}

// ToggleWatchlist flips watchlist membership for the movie.
func (srv *libraryService) ToggleWatchlist(ctx context.Context, movie entity.MovieSummary) (bool, error) {
	return srv.toggle(ctx, srv.watchlist, &srv.watchList, movie, "watchlist")
}

// toggle is the shared two-phase flip: remote write first, local update
// only once the remote step succeeded. A remote failure therefore leaves
// the local copy untouched; completion order of concurrent toggles on the
// same movie is resolved by the store's last-write-wins.
func (srv *libraryService) toggle(
	ctx context.Context,
	repo repository.MovieListRepository,
	local *[]*entity.MovieSummary,
	movie entity.MovieSummary,
	collection string,
) (bool, error) {
	identity, err := srv.identity()
	if err != nil {
		return false, err
	}

	srv.mu.RLock()
	member := containsMovie(*local, movie.ID)
	srv.mu.RUnlock()

	if member {
		// A missing remote entry means it was already removed elsewhere;
		// dropping the stale local copy is still the right outcome.
		if err := repo.Delete(ctx, identity.ID, movie.ID); err != nil && !errors.Is(err, repository.ErrEntryNotFound) {
			srv.log(ctx).Error("Failed to remove list entry",
				slog.String("collection", collection), slog.Int64("movie_id", movie.ID), slog.Any("error", err))

			return true, errors.Wrapf(domainerrors.ErrRemoteUnavailable, "remove from %s failed", collection)
		}

		srv.mu.Lock()
		*local = removeMovie(*local, movie.ID)
		srv.mu.Unlock()

		return false, nil
	}

	entry := &entity.MovieListEntry{UserID: identity.ID, Movie: movie}
	if err := repo.Put(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to add list entry",
			slog.String("collection", collection), slog.Int64("movie_id", movie.ID), slog.Any("error", err))

		return false, errors.Wrapf(domainerrors.ErrRemoteUnavailable, "add to %s failed", collection)
	}

	srv.mu.Lock()
	snapshot := movie
	*local = append(*local, &snapshot)
	srv.mu.Unlock()

	return true, nil
}

// IsFavorite is a synchronous membership query against the local cache.
func (srv *libraryService) IsFavorite(movieID int64) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return containsMovie(srv.favoriteList, movieID)
}

// IsInWatchlist is a synchronous membership query against the local cache.
func (srv *libraryService) IsInWatchlist(movieID int64) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return containsMovie(srv.watchList, movieID)
}

// AddReview creates the user's review for a movie, or transparently updates
// the existing one: at most one review exists per (user, movie) pair.
func (srv *libraryService) AddReview(ctx context.Context, movieID int64, rating int, comment string) (*entity.Review, error) {
	identity, err := srv.identity()
	if err != nil {
		return nil, err
	}
	if err := srv.validateRating(rating); err != nil {
		return nil, err
	}

	if existing, ok := srv.GetUserReview(movieID); ok {
		return srv.UpdateReview(ctx, existing.ID, rating, comment)
	}

	review := &entity.Review{
		MovieID:   movieID,
		UserID:    identity.ID,
		Username:  identity.DisplayName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	id, err := srv.reviews.Create(ctx, review)
	if err != nil {
		srv.log(ctx).Error("Failed to create review", slog.Int64("movie_id", movieID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "save review failed")
	}
	review.ID = id

	srv.mu.Lock()
	srv.reviewList = append([]*entity.Review{review}, srv.reviewList...)
	srv.mu.Unlock()

	srv.log(ctx).Info("Review created", slog.String("review_id", id), slog.Int64("movie_id", movieID))

	return review, nil
}

// UpdateReview rewrites rating and comment of an owned review remotely,
// then swaps a fresh struct into the local cache. Cached entries are never
// mutated after publication; snapshot pointers handed out earlier stay valid.
func (srv *libraryService) UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*entity.Review, error) {
	if _, err := srv.identity(); err != nil {
		return nil, err
	}
	if err := srv.validateRating(rating); err != nil {
		return nil, err
	}

	if err := srv.reviews.Update(ctx, reviewID, rating, comment); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "update review failed")
		}
		srv.log(ctx).Error("Failed to update review", slog.String("review_id", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "update review failed")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	for i, review := range srv.reviewList {
		if review.ID == reviewID {
			updated := *review
			updated.Rating = rating
			updated.Comment = comment
			srv.reviewList[i] = &updated

			return &updated, nil
		}
	}

	// The remote update succeeded but the review is not cached locally;
	// the next LoadAll reconciles.
	return &entity.Review{ID: reviewID, Rating: rating, Comment: comment}, nil
}

// DeleteReview deletes remotely, then removes the matching local entry.
func (srv *libraryService) DeleteReview(ctx context.Context, reviewID string) error {
	if _, err := srv.identity(); err != nil {
		return err
	}

	if err := srv.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, "delete review failed")
		}
		srv.log(ctx).Error("Failed to delete review", slog.String("review_id", reviewID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrRemoteUnavailable, "delete review failed")
	}

	srv.mu.Lock()
	for i, review := range srv.reviewList {
		if review.ID == reviewID {
			srv.reviewList = append(srv.reviewList[:i], srv.reviewList[i+1:]...)

			break
		}
	}
	srv.mu.Unlock()

	return nil
}

// GetMovieReviews returns the locally-held reviews for a movie. The cache
// holds the current user's reviews only.
func (srv *libraryService) GetMovieReviews(movieID int64) []*entity.Review {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	var out []*entity.Review
	for _, review := range srv.reviewList {
		if review.MovieID == movieID {
			out = append(out, review)
		}
	}

	return out
}

// GetUserReview returns the current user's review for the movie, if any.
func (srv *libraryService) GetUserReview(movieID int64) (*entity.Review, bool) {
	identity := srv.session.Current()
	if identity == nil {
		return nil, false
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()
	for _, review := range srv.reviewList {
		if review.MovieID == movieID && review.UserID == identity.ID {
			return review, true
		}
	}

	return nil, false
}

// MovieReviews fetches the cross-user review feed straight from the store.
func (srv *libraryService) MovieReviews(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		srv.log(ctx).Error("Failed to load movie reviews", slog.Int64("movie_id", movieID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "load movie reviews failed")
	}

	return reviews, nil
}

// Close stops the session event pump.
func (srv *libraryService) Close() error {
	<-srv.pumpDone

	return nil
}

// validateRating rejects ratings outside [1,5] before any remote write is
// attempted; an invalid rating never reaches the store.
func (srv *libraryService) validateRating(rating int) error {
	if err := srv.validate.Var(rating, "gte=1,lte=5"); err != nil {
		return errors.Wrapf(domainerrors.ErrRatingOutOfRange, "rating %d", rating)
	}

	return nil
}

// pumpSessionEvents keeps the collections in lockstep with the session
// manager: reload on sign-in, clear on sign-out.
func (srv *libraryService) pumpSessionEvents(events <-chan entity.SessionEvent) {
	defer close(srv.pumpDone)

	for event := range events {
		switch event.Type {
		case entity.SessionSignedIn:
			ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
			if err := srv.LoadAll(ctx); err != nil {
				srv.logger.Error("Failed to load library on sign-in", slog.Any("error", err))
			}
			cancel()
		case entity.SessionSignedOut:
			srv.mu.Lock()
			srv.favoriteList = nil
			srv.watchList = nil
			srv.reviewList = nil
			srv.mu.Unlock()
		}
	}
}

func summaries(entries []*entity.MovieListEntry) []*entity.MovieSummary {
	out := make([]*entity.MovieSummary, 0, len(entries))
	for _, entry := range entries {
		movie := entry.Movie
		out = append(out, &movie)
	}

	return out
}

func containsMovie(list []*entity.MovieSummary, movieID int64) bool {
	for _, movie := range list {
		if movie.ID == movieID {
			return true
		}
	}

	return false
}

func removeMovie(list []*entity.MovieSummary, movieID int64) []*entity.MovieSummary {
	out := list[:0]
	for _, movie := range list {
		if movie.ID != movieID {
			out = append(out, movie)
		}
	}

	return out
}
