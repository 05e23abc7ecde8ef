package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// CatalogUsecase exposes the read-only movie metadata operations the
// discovery screens consume.
type CatalogUsecase interface {
	Trending(ctx context.Context) ([]*entity.MovieSummary, error)
	Popular(ctx context.Context) ([]*entity.MovieSummary, error)
	TopRated(ctx context.Context) ([]*entity.MovieSummary, error)
	Search(ctx context.Context, query string) ([]*entity.MovieSummary, error)
	MovieDetails(ctx context.Context, movieID int64) (*entity.MovieDetails, error)
	Genres(ctx context.Context) ([]*entity.Genre, error)
	ImageURL(path, size string) string
}
