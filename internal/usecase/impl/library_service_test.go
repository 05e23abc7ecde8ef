package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	mockRepo "cinelog/internal/mocks/repository"
	mockService "cinelog/internal/mocks/service"
	mockUsecase "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type libraryFixture struct {
	session   *mockUsecase.MockSessionUsecase
	favorites *mockRepo.MockMovieListRepository
	watchlist *mockRepo.MockMovieListRepository
	reviews   *mockRepo.MockReviewRepository
	events    chan entity.SessionEvent
}

func newLibraryFixture(t *testing.T) *libraryFixture {
	t.Helper()

	f := &libraryFixture{
		session:   mockUsecase.NewMockSessionUsecase(t),
		favorites: mockRepo.NewMockMovieListRepository(t),
		watchlist: mockRepo.NewMockMovieListRepository(t),
		reviews:   mockRepo.NewMockReviewRepository(t),
		events:    make(chan entity.SessionEvent),
	}
	f.session.EXPECT().Subscribe().Return(f.events)

	return f
}

func (f *libraryFixture) start(t *testing.T) usecase.LibraryUsecase {
	t.Helper()

	srv := NewLibraryService(LibraryParams{
		Session:   f.session,
		Favorites: f.favorites,
		Watchlist: f.watchlist,
		Reviews:   f.reviews,
		Logger:    slog.Default(),
	})
	t.Cleanup(func() {
		close(f.events)
		srv.Close()
	})

	return srv
}

func (f *libraryFixture) signedIn(id, name string) {
	f.session.EXPECT().Current().Return(&entity.Identity{ID: id, DisplayName: name})
}

func movie(id int64, title string) entity.MovieSummary {
	return entity.MovieSummary{ID: id, Title: title, PosterPath: "/p.jpg", VoteAverage: 7.0}
}

func TestLibraryService_ToggleFavoriteRoundTrip(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()
	target := movie(42, "The Answer")

	f.favorites.EXPECT().Put(ctx, mock.AnythingOfType("*entity.MovieListEntry")).Return(nil).Once()

	added, err := srv.ToggleFavorite(ctx, target)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, srv.IsFavorite(42))
	assert.Len(t, srv.Favorites(), 1)

	f.favorites.EXPECT().Delete(ctx, "u1", int64(42)).Return(nil).Once()

	added, err = srv.ToggleFavorite(ctx, target)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, srv.IsFavorite(42))
	assert.Empty(t, srv.Favorites())
}

func TestLibraryService_ToggleFavoriteRemovalToleratesVanishedEntry(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()
	target := movie(42, "The Answer")

	f.favorites.EXPECT().Put(ctx, mock.AnythingOfType("*entity.MovieListEntry")).Return(nil).Once()
	_, err := srv.ToggleFavorite(ctx, target)
	require.NoError(t, err)

	// The remote entry disappeared underneath the cache, removed from
	// another device for instance; removal still lands on the desired
	// end state.
	f.favorites.EXPECT().Delete(ctx, "u1", int64(42)).Return(repository.ErrEntryNotFound).Once()

	added, err := srv.ToggleFavorite(ctx, target)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, srv.IsFavorite(42))
	assert.Empty(t, srv.Favorites())
}

func TestLibraryService_ToggleWatchlistRemoteFailureLeavesLocalUntouched(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()

	f.watchlist.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.MovieListEntry")).
		Return(errors.New("store down"))

	added, err := srv.ToggleWatchlist(ctx, movie(7, "Se7en"))
	assert.False(t, added)
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))

	// The remote write failed, so the local collection must not change.
	assert.False(t, srv.IsInWatchlist(7))
	assert.Empty(t, srv.Watchlist())
}

func TestLibraryService_ToggleRequiresSession(t *testing.T) {
	f := newLibraryFixture(t)
	f.session.EXPECT().Current().Return(nil)
	srv := f.start(t)

	_, err := srv.ToggleFavorite(context.Background(), movie(1, "Up"))
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestLibraryService_LoadAllReplacesStateAndOrdersReviews(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()
	now := time.Now().UTC()

	f.favorites.EXPECT().ListByUser(ctx, "u1").Return([]*entity.MovieListEntry{
		{UserID: "u1", Movie: movie(1, "Alien")},
		{UserID: "u1", Movie: movie(2, "Arrival")},
	}, nil)
	f.watchlist.EXPECT().ListByUser(ctx, "u1").Return([]*entity.MovieListEntry{
		{UserID: "u1", Movie: movie(3, "Dune")},
	}, nil)
	f.reviews.EXPECT().ListByUser(ctx, "u1").Return([]*entity.Review{
		{ID: "r-old", MovieID: 1, UserID: "u1", CreatedAt: now.Add(-time.Hour)},
		{ID: "r-new", MovieID: 2, UserID: "u1", CreatedAt: now},
	}, nil)

	require.NoError(t, srv.LoadAll(ctx))

	assert.Len(t, srv.Favorites(), 2)
	assert.Len(t, srv.Watchlist(), 1)

	reviews := srv.Reviews()
	require.Len(t, reviews, 2)
	assert.Equal(t, "r-new", reviews[0].ID)
	assert.Equal(t, "r-old", reviews[1].ID)
}

func TestLibraryService_AddReviewRejectsRatingOutOfRange(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := srv.AddReview(context.Background(), 42, rating, "nope")
		assert.True(t, errors.Is(err, domainerrors.ErrRatingOutOfRange))
	}

	// No remote write may happen for an invalid rating.
	f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLibraryService_AddReviewTwiceUpdatesInsteadOfDuplicating(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()

	f.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return("r1", nil).Once()

	first, err := srv.AddReview(ctx, 42, 5, "masterpiece")
	require.NoError(t, err)
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, "Ada", first.Username)

	f.reviews.EXPECT().Update(ctx, "r1", 3, "on rewatch, flawed").Return(nil).Once()

	second, err := srv.AddReview(ctx, 42, 3, "on rewatch, flawed")
	require.NoError(t, err)
	assert.Equal(t, "r1", second.ID)
	assert.Equal(t, 3, second.Rating)

	reviews := srv.Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, 3, reviews[0].Rating)

	got, ok := srv.GetUserReview(42)
	require.True(t, ok)
	assert.Equal(t, "r1", got.ID)
}

func TestLibraryService_UpdateReviewLeavesEarlierSnapshotsUntouched(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()

	f.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return("r1", nil).Once()
	_, err := srv.AddReview(ctx, 42, 4, "good")
	require.NoError(t, err)

	before, ok := srv.GetUserReview(42)
	require.True(t, ok)

	f.reviews.EXPECT().Update(ctx, "r1", 2, "aged poorly").Return(nil).Once()
	updated, err := srv.UpdateReview(ctx, "r1", 2, "aged poorly")
	require.NoError(t, err)

	// The update replaces the cached entry; a pointer handed out earlier
	// keeps its values, so concurrent readers never observe the write.
	assert.Equal(t, 4, before.Rating)
	assert.Equal(t, "good", before.Comment)
	assert.Equal(t, 2, updated.Rating)

	after, ok := srv.GetUserReview(42)
	require.True(t, ok)
	assert.Equal(t, 2, after.Rating)
	assert.Equal(t, "aged poorly", after.Comment)
}

func TestLibraryService_WarmStartLoadsCollections(t *testing.T) {
	auth := mockService.NewMockAuthenticator(t)
	store := mockService.NewMockSessionStore(t)
	providerEvents := make(chan entity.SessionEvent)
	auth.EXPECT().Events().Return(providerEvents)
	store.EXPECT().Load().Return(&entity.Identity{ID: "u1", DisplayName: "Ada"}, nil)

	session := NewSessionService(auth, store, slog.Default())

	favorites := mockRepo.NewMockMovieListRepository(t)
	watchlist := mockRepo.NewMockMovieListRepository(t)
	reviews := mockRepo.NewMockReviewRepository(t)

	favorites.EXPECT().ListByUser(mock.Anything, "u1").Return([]*entity.MovieListEntry{
		{UserID: "u1", Movie: movie(1, "Alien")},
	}, nil)
	watchlist.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)
	reviews.EXPECT().ListByUser(mock.Anything, "u1").Return([]*entity.Review{
		{ID: "r1", MovieID: 7, UserID: "u1", Rating: 4, CreatedAt: time.Now().UTC()},
	}, nil)

	srv := NewLibraryService(LibraryParams{
		Session:   session,
		Favorites: favorites,
		Watchlist: watchlist,
		Reviews:   reviews,
		Logger:    slog.Default(),
	})
	t.Cleanup(func() {
		auth.EXPECT().Close().Return(nil).Maybe()
		close(providerEvents)
		session.Close()
		srv.Close()
	})

	// A process restart with a mirrored session must refill the
	// collections before any membership or duplicate check runs.
	assert.Eventually(t, func() bool {
		return srv.IsFavorite(1) && len(srv.Reviews()) == 1
	}, time.Second, 10*time.Millisecond)

	// The loaded cache makes a repeat submission an update, not a second
	// document for the same movie.
	reviews.EXPECT().Update(mock.Anything, "r1", 5, "still great").Return(nil).Once()

	updated, err := srv.AddReview(context.Background(), 7, 5, "still great")
	require.NoError(t, err)
	assert.Equal(t, "r1", updated.ID)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLibraryService_DeleteReviewRemovesLocalEntry(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	ctx := context.Background()

	f.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return("r1", nil).Once()
	_, err := srv.AddReview(ctx, 42, 4, "good")
	require.NoError(t, err)

	f.reviews.EXPECT().Delete(ctx, "r1").Return(nil).Once()
	require.NoError(t, srv.DeleteReview(ctx, "r1"))

	assert.Empty(t, srv.Reviews())
	assert.Empty(t, srv.GetMovieReviews(42))
}

func TestLibraryService_MovieReviewsFetchesCrossUserFeed(t *testing.T) {
	f := newLibraryFixture(t)
	srv := f.start(t)

	ctx := context.Background()
	feed := []*entity.Review{
		{ID: "r1", MovieID: 42, UserID: "u2", Username: "Grace", Rating: 5},
		{ID: "r2", MovieID: 42, UserID: "u3", Username: "Alan", Rating: 4},
	}

	f.reviews.EXPECT().ListByMovie(ctx, int64(42)).Return(feed, nil)

	got, err := srv.MovieReviews(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, feed, got)
}

func TestLibraryService_SessionEventsDriveLoadAndClear(t *testing.T) {
	f := newLibraryFixture(t)
	f.signedIn("u1", "Ada")
	srv := f.start(t)

	f.favorites.EXPECT().ListByUser(mock.Anything, "u1").Return([]*entity.MovieListEntry{
		{UserID: "u1", Movie: movie(1, "Alien")},
	}, nil)
	f.watchlist.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)
	f.reviews.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)

	f.events <- entity.SessionEvent{Type: entity.SessionSignedIn, Identity: &entity.Identity{ID: "u1"}}

	assert.Eventually(t, func() bool {
		return srv.IsFavorite(1)
	}, time.Second, 10*time.Millisecond)

	f.events <- entity.SessionEvent{Type: entity.SessionSignedOut}

	assert.Eventually(t, func() bool {
		return !srv.IsFavorite(1) && len(srv.Favorites()) == 0
	}, time.Second, 10*time.Millisecond)
}
