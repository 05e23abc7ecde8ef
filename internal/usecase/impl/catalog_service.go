package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface as a thin façade
// over the movie metadata API client.
type catalogService struct {
	catalog service.MovieCatalog
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog service.MovieCatalog, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Trending(ctx context.Context) ([]*entity.MovieSummary, error) {
	movies, err := srv.catalog.Trending(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch trending movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "fetch trending movies failed")
	}

	return movies, nil
}

func (srv *catalogService) Popular(ctx context.Context) ([]*entity.MovieSummary, error) {
	movies, err := srv.catalog.Popular(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch popular movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "fetch popular movies failed")
	}

	return movies, nil
}

func (srv *catalogService) TopRated(ctx context.Context) ([]*entity.MovieSummary, error) {
	movies, err := srv.catalog.TopRated(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch top rated movies", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "fetch top rated movies failed")
	}

	return movies, nil
}

func (srv *catalogService) Search(ctx context.Context, query string) ([]*entity.MovieSummary, error) {
	movies, err := srv.catalog.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Movie search failed", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "movie search failed")
	}

	return movies, nil
}

func (srv *catalogService) MovieDetails(ctx context.Context, movieID int64) (*entity.MovieDetails, error) {
	details, err := srv.catalog.MovieDetails(ctx, movieID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch movie details", slog.Int64("movie_id", movieID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "fetch movie details failed")
	}

	return details, nil
}

func (srv *catalogService) Genres(ctx context.Context) ([]*entity.Genre, error) {
	genres, err := srv.catalog.Genres(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch genres", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "fetch genres failed")
	}

	return genres, nil
}

func (srv *catalogService) ImageURL(path, size string) string {
	return srv.catalog.ImageURL(path, size)
}
