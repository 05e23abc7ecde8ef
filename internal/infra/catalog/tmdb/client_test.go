package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinelog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.TMDB = &config.TMDBConfig{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p",
		Timeout:      2 * time.Second,
	}

	catalog, err := NewClient(cfg)
	require.NoError(t, err)

	return catalog.(*client)
}

func TestClient_PopularMapsResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"id": 42, "title": "X", "poster_path": "/x.jpg", "vote_average": 7.4, "release_date": "2024-03-01"},
				{"id": 7, "title": "Y", "poster_path": "", "vote_average": 5.1, "release_date": ""},
			},
		})
	})

	movies, err := c.Popular(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, int64(42), movies[0].ID)
	assert.Equal(t, "X", movies[0].Title)
	assert.Equal(t, "/x.jpg", movies[0].PosterPath)
	assert.InDelta(t, 7.4, movies[0].VoteAverage, 0.001)
	assert.Equal(t, "2024-03-01", movies[0].ReleaseDate)
}

func TestClient_SearchEncodesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("query"))

		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	})

	movies, err := c.Search(context.Background(), "the matrix")
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestClient_MovieDetailsIncludesCredits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))

		json.NewEncoder(w).Encode(map[string]any{
			"id": 603, "title": "The Matrix", "overview": "A hacker learns the truth.",
			"runtime": 136,
			"genres":  []map[string]any{{"id": 28, "name": "Action"}},
			"credits": map[string]any{
				"cast": []map[string]any{{"name": "Keanu Reeves", "character": "Neo", "profile_path": "/kr.jpg"}},
			},
		})
	})

	details, err := c.MovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", details.Title)
	assert.Equal(t, 136, details.Runtime)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Action", details.Genres[0].Name)
	require.Len(t, details.Cast, 1)
	assert.Equal(t, "Neo", details.Cast[0].Character)
}

func TestClient_ErrorStatusSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Trending(context.Background())
	assert.Error(t, err)
}

func TestClient_ImageURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", c.ImageURL("/abc.jpg", ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/abc.jpg", c.ImageURL("/abc.jpg", "w185"))
	assert.Equal(t, "", c.ImageURL("", "w500"))
}
