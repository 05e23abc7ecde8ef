package handler

import (
	"log/slog"
	"net/http"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for movie metadata handlers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	library usecase.LibraryUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, library usecase.LibraryUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, library: library, logger: logger}
}

// Trending returns this week's trending movies.
func (h *CatalogHandler) Trending(c echo.Context) error {
	movies, err := h.catalog.Trending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Trending movies")
}

// Popular returns the popular movies list.
func (h *CatalogHandler) Popular(c echo.Context) error {
	movies, err := h.catalog.Popular(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Popular movies")
}

// TopRated returns the top rated movies list.
func (h *CatalogHandler) TopRated(c echo.Context) error {
	movies, err := h.catalog.TopRated(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Top rated movies")
}

// Search searches movies by title.
func (h *CatalogHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter is required")
	}

	movies, err := h.catalog.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Search results")
}

// Details returns one movie with credits and genres.
func (h *CatalogHandler) Details(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	details, err := h.catalog.MovieDetails(c.Request().Context(), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Movie details")
}

// Genres returns the genre catalog.
func (h *CatalogHandler) Genres(c echo.Context) error {
	genres, err := h.catalog.Genres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genres, "Genres")
}

// Reviews returns the cross-user review feed for a movie, straight from the
// store. The library's local cache holds the signed-in user's reviews only.
func (h *CatalogHandler) Reviews(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	reviews, err := h.library.MovieReviews(c.Request().Context(), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Movie reviews")
}
