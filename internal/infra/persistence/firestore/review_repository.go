package firestore

import (
	"context"
	"time"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"

	firestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const reviewsCollection = "reviews"

type reviewModel struct {
	MovieID   int64     `firestore:"movieId"`
	UserID    string    `firestore:"userId"`
	Username  string    `firestore:"username"`
	Rating    int       `firestore:"rating"`
	Comment   string    `firestore:"comment"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func (m *reviewModel) toEntity(id string) *entity.Review {
	return &entity.Review{
		ID:        id,
		MovieID:   m.MovieID,
		UserID:    m.UserID,
		Username:  m.Username,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

type reviewRepository struct {
	client *firestore.Client
}

// NewReviewRepository creates the Firestore-backed review repository.
func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).
		Where("movieId", "==", movieID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *reviewRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Review, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list reviews")
		}

		var model reviewModel
		if err := doc.DataTo(&model); err != nil {
			return nil, errors.Wrap(err, "failed to decode review")
		}
		reviews = append(reviews, model.toEntity(doc.Ref.ID))
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) (string, error) {
	ref := r.client.Collection(reviewsCollection).NewDoc()

	model := &reviewModel{
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	if _, err := ref.Set(ctx, model); err != nil {
		return "", errors.Wrap(err, "failed to create review")
	}

	return ref.ID, nil
}

func (r *reviewRepository) Update(ctx context.Context, reviewID string, rating int, comment string) error {
	_, err := r.client.Collection(reviewsCollection).Doc(reviewID).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "comment", Value: comment},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to update review")
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID string) error {
	if _, err := r.client.Collection(reviewsCollection).Doc(reviewID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
