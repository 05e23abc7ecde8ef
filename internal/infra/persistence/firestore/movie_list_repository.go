// Package firestore implements the repository interfaces on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"

	firestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// movieListModel is the document shape for favorites and watchlist entries.
// Field names match the metadata API payload the original clients spread
// into the document, plus ownership metadata.
type movieListModel struct {
	ID          int64     `firestore:"id"`
	Title       string    `firestore:"title"`
	PosterPath  string    `firestore:"poster_path"`
	VoteAverage float64   `firestore:"vote_average"`
	ReleaseDate string    `firestore:"release_date"`
	UserID      string    `firestore:"userId"`
	AddedAt     time.Time `firestore:"addedAt,serverTimestamp"`
}

func (m *movieListModel) toEntity() *entity.MovieListEntry {
	return &entity.MovieListEntry{
		UserID: m.UserID,
		Movie: entity.MovieSummary{
			ID:          m.ID,
			Title:       m.Title,
			PosterPath:  m.PosterPath,
			VoteAverage: m.VoteAverage,
			ReleaseDate: m.ReleaseDate,
		},
		AddedAt: m.AddedAt,
	}
}

type movieListRepository struct {
	client     *firestore.Client
	collection string
}

// NewMovieListRepository creates a list repository bound to one collection
// ("favorites" or "watchlist").
func NewMovieListRepository(client *firestore.Client, collection string) repository.MovieListRepository {
	return &movieListRepository{
		client:     client,
		collection: collection,
	}
}

// EntryDocID builds the composite document ID keying a list entry. At most
// one document exists per (userID, movieID) pair because writes for the
// same pair land on the same ID.
func EntryDocID(userID string, movieID int64) string {
	return fmt.Sprintf("%s_%d", userID, movieID)
}

func (r *movieListRepository) ListByUser(ctx context.Context, userID string) ([]*entity.MovieListEntry, error) {
	iter := r.client.Collection(r.collection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	var entries []*entity.MovieListEntry
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s", r.collection)
		}

		var model movieListModel
		if err := doc.DataTo(&model); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s entry", r.collection)
		}
		entries = append(entries, model.toEntity())
	}

	return entries, nil
}

func (r *movieListRepository) Put(ctx context.Context, entry *entity.MovieListEntry) error {
	model := &movieListModel{
		ID:          entry.Movie.ID,
		Title:       entry.Movie.Title,
		PosterPath:  entry.Movie.PosterPath,
		VoteAverage: entry.Movie.VoteAverage,
		ReleaseDate: entry.Movie.ReleaseDate,
		UserID:      entry.UserID,
		AddedAt:     entry.AddedAt, // zero value becomes a server timestamp
	}

	docID := EntryDocID(entry.UserID, entry.Movie.ID)
	if _, err := r.client.Collection(r.collection).Doc(docID).Set(ctx, model); err != nil {
		return errors.Wrapf(err, "failed to put %s entry", r.collection)
	}

	return nil
}

func (r *movieListRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	docID := EntryDocID(userID, movieID)
	if _, err := r.client.Collection(r.collection).Doc(docID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return repository.ErrEntryNotFound
		}

		return errors.Wrapf(err, "failed to delete %s entry", r.collection)
	}

	return nil
}
