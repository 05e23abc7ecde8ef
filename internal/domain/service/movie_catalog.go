package service

import (
	"context"

	"cinelog/internal/domain/entity"
)

// MovieCatalog is the read-only movie metadata API collaborator.
type MovieCatalog interface {
	Trending(ctx context.Context) ([]*entity.MovieSummary, error)
	Popular(ctx context.Context) ([]*entity.MovieSummary, error)
	TopRated(ctx context.Context) ([]*entity.MovieSummary, error)
	Search(ctx context.Context, query string) ([]*entity.MovieSummary, error)
	MovieDetails(ctx context.Context, movieID int64) (*entity.MovieDetails, error)
	Genres(ctx context.Context) ([]*entity.Genre, error)

	// ImageURL resolves a relative poster path against the image base URL
	// at the given size. Returns "" for an empty path.
	ImageURL(path, size string) string
}
