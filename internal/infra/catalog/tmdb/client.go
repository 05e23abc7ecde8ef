// Package tmdb implements the read-only movie metadata API client.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// DefaultImageSize is the poster size used when callers pass none.
const DefaultImageSize = "w500"

type client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
}

// NewClient creates the metadata API client from config.
func NewClient(cfg *config.Config) (service.MovieCatalog, error) {
	if cfg.TMDB == nil || cfg.TMDB.APIKey == "" {
		return nil, errors.New("tmdb API key is not configured")
	}

	timeout := cfg.TMDB.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		apiKey:       cfg.TMDB.APIKey,
		baseURL:      cfg.TMDB.BaseURL,
		imageBaseURL: cfg.TMDB.ImageBaseURL,
		httpClient:   &http.Client{Timeout: timeout},
	}, nil
}

// movieResult is the list-item shape shared by the trending, popular,
// top-rated and search endpoints.
type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

func (m *movieResult) toEntity() *entity.MovieSummary {
	return &entity.MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
	}
}

type movieListResponse struct {
	Results []movieResult `json:"results"`
}

type movieDetailsResponse struct {
	movieResult
	Overview string `json:"overview"`
	Runtime  int    `json:"runtime"`
	Genres   []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name        string `json:"name"`
			Character   string `json:"character"`
			ProfilePath string `json:"profile_path"`
		} `json:"cast"`
	} `json:"credits"`
}

type genreListResponse struct {
	Genres []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

func (c *client) Trending(ctx context.Context) ([]*entity.MovieSummary, error) {
	return c.movieList(ctx, "/trending/movie/week", nil)
}

func (c *client) Popular(ctx context.Context) ([]*entity.MovieSummary, error) {
	return c.movieList(ctx, "/movie/popular", nil)
}

func (c *client) TopRated(ctx context.Context) ([]*entity.MovieSummary, error) {
	return c.movieList(ctx, "/movie/top_rated", nil)
}

func (c *client) Search(ctx context.Context, query string) ([]*entity.MovieSummary, error) {
	return c.movieList(ctx, "/search/movie", url.Values{"query": {query}})
}

func (c *client) movieList(ctx context.Context, path string, params url.Values) ([]*entity.MovieSummary, error) {
	var resp movieListResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	movies := make([]*entity.MovieSummary, 0, len(resp.Results))
	for i := range resp.Results {
		movies = append(movies, resp.Results[i].toEntity())
	}

	return movies, nil
}

func (c *client) MovieDetails(ctx context.Context, movieID int64) (*entity.MovieDetails, error) {
	var resp movieDetailsResponse
	params := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), params, &resp); err != nil {
		return nil, err
	}

	details := &entity.MovieDetails{
		MovieSummary: *resp.movieResult.toEntity(),
		Overview:     resp.Overview,
		Runtime:      resp.Runtime,
	}
	for _, genre := range resp.Genres {
		details.Genres = append(details.Genres, entity.Genre{ID: genre.ID, Name: genre.Name})
	}
	for _, cast := range resp.Credits.Cast {
		details.Cast = append(details.Cast, entity.CastMember{
			Name:      cast.Name,
			Character: cast.Character,
			Profile:   cast.ProfilePath,
		})
	}

	return details, nil
}

func (c *client) Genres(ctx context.Context) ([]*entity.Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}

	genres := make([]*entity.Genre, 0, len(resp.Genres))
	for _, genre := range resp.Genres {
		genres = append(genres, &entity.Genre{ID: genre.ID, Name: genre.Name})
	}

	return genres, nil
}

// ImageURL resolves a relative poster path against the image base URL.
func (c *client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = DefaultImageSize
	}

	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, size, path)
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "metadata API request failed: %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("metadata API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response: %s", path)
	}

	return nil
}
