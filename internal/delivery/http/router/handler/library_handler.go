package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ToggleRequest carries the movie summary stored alongside the membership
// flag, so list screens can render without a catalog round trip.
type ToggleRequest struct {
	ID          int64   `json:"id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

// AddReviewRequest is the payload for creating the user's review of a movie.
type AddReviewRequest struct {
	MovieID int64  `json:"movieId" validate:"required"`
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest is the payload for rewriting an owned review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// LibraryHandler holds dependencies for library-related handlers.
type LibraryHandler struct {
	library usecase.LibraryUsecase
	logger  *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler, injected by Fx.
func NewLibraryHandler(library usecase.LibraryUsecase, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{library: library, logger: logger}
}

// Favorites returns the favorites collection.
func (h *LibraryHandler) Favorites(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.library.Favorites(), "Favorites")
}

// Watchlist returns the watchlist collection.
func (h *LibraryHandler) Watchlist(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.library.Watchlist(), "Watchlist")
}

// ToggleFavorite flips favorites membership for the movie in the body.
func (h *LibraryHandler) ToggleFavorite(c echo.Context) error {
	movie, err := bindToggle(c)
	if err != nil {
		return err
	}

	added, err := h.library.ToggleFavorite(c.Request().Context(), *movie)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"inLibrary": added}, "Favorites updated")
}

// ToggleWatchlist flips watchlist membership for the movie in the body.
func (h *LibraryHandler) ToggleWatchlist(c echo.Context) error {
	movie, err := bindToggle(c)
	if err != nil {
		return err
	}

	added, err := h.library.ToggleWatchlist(c.Request().Context(), *movie)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"inLibrary": added}, "Watchlist updated")
}

// Reviews returns the user's own reviews, newest first.
func (h *LibraryHandler) Reviews(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.library.Reviews(), "Reviews")
}

// AddReview creates the user's review for a movie. A second submission for
// the same movie updates the existing review instead of duplicating it.
func (h *LibraryHandler) AddReview(c echo.Context) error {
	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.library.AddReview(c.Request().Context(), req.MovieID, req.Rating, req.Comment)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review saved")
}

// UpdateReview rewrites rating and comment of an owned review.
func (h *LibraryHandler) UpdateReview(c echo.Context) error {
	reviewID := c.Param("id")

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.library.UpdateReview(c.Request().Context(), reviewID, req.Rating, req.Comment)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated")
}

// DeleteReview removes an owned review.
func (h *LibraryHandler) DeleteReview(c echo.Context) error {
	if err := h.library.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted")
}

// MovieReviews returns the user's own reviews of one movie from the local
// cache, plus the user's review lookup flag the detail screen needs.
func (h *LibraryHandler) MovieReviews(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.library.GetMovieReviews(movieID), "Reviews")
}

// UserReview returns the user's review for one movie, or 404.
func (h *LibraryHandler) UserReview(c echo.Context) error {
	movieID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	review, ok := h.library.GetUserReview(movieID)
	if !ok {
		return response.NotFound(c, "REVIEW_NOT_FOUND", "No review for this movie")
	}

	return response.Success(c, http.StatusOK, review, "Review")
}

func bindToggle(c echo.Context) (*entity.MovieSummary, error) {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid movie input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.MovieSummary{
		ID:          req.ID,
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		VoteAverage: req.VoteAverage,
		ReleaseDate: req.ReleaseDate,
	}, nil
}

func movieIDParam(c echo.Context) (int64, error) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "movie ID must be numeric")
	}

	return movieID, nil
}
