package tmdb

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// newTestClient returns a client pointed at a local test server, plus a
// counter of requests the server actually received.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64, func()) {
	t.Helper()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))

	client := New(Config{APIKey: "test-key"}, slog.New(slog.DiscardHandler))
	client.http = server.Client()
	client.baseURL = server.URL

	return client, &hits, server.Close
}

func TestSearchMovies_MapsResults(t *testing.T) {
	fixture := loadFixture(t, "search_response.json")
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "기생충", r.URL.Query().Get("query"))
		assert.Equal(t, "ko-KR", r.URL.Query().Get("language"))
		assert.Equal(t, "KR", r.URL.Query().Get("region"))
		w.Write(fixture)
	})
	defer done()

	movies, err := client.SearchMovies(context.Background(), "기생충")
	require.NoError(t, err)
	require.Len(t, movies, 2)

	first := movies[0]
	assert.Equal(t, "496243", first.ID)
	assert.Equal(t, "기생충", first.Title)
	assert.Equal(t, 2019, first.Year)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/x.jpg", first.PosterURL)
	assert.Empty(t, first.Director)
	assert.Empty(t, first.Genres)
}

func TestSearchMovies_NullPosterAndEmptyDateCoerce(t *testing.T) {
	fixture := loadFixture(t, "search_response.json")
	client, _, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write(fixture)
	})
	defer done()

	movies, err := client.SearchMovies(context.Background(), "기생충")
	require.NoError(t, err)
	require.Len(t, movies, 2)

	second := movies[1]
	assert.Empty(t, second.PosterURL)
	assert.Equal(t, 0, second.Year)
}

func TestSearchMovies_MalformedDateYieldsYearZero(t *testing.T) {
	client, _, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[{"id":1,"title":"t","poster_path":"","release_date":"not-a-date"}]}`))
	})
	defer done()

	movies, err := client.SearchMovies(context.Background(), "t")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 0, movies[0].Year)
}

func TestSearchMovies_EmptyQueryShortCircuits(t *testing.T) {
	client, hits, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer done()

	for _, query := range []string{"", "   ", "\t\n"} {
		movies, err := client.SearchMovies(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, movies)
	}
	assert.Equal(t, int64(0), hits.Load(), "no network call expected for blank queries")
}

func TestSearchMovies_MissingKeyFailsBeforeNetwork(t *testing.T) {
	client, hits, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer done()
	client.apiKey = ""

	_, err := client.SearchMovies(context.Background(), "기생충")
	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSearchMovies_ErrorCarriesStatus(t *testing.T) {
	client, _, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer done()

	_, err := client.SearchMovies(context.Background(), "기생충")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Status)
}

func TestGetMovieDetail_ResolvesDirectorAndGenres(t *testing.T) {
	fixture := loadFixture(t, "movie_detail.json")
	client, _, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/496243", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))
		w.Write(fixture)
	})
	defer done()

	movie, err := client.GetMovieDetail(context.Background(), "496243")
	require.NoError(t, err)

	// First crew entry with job "Director" wins.
	assert.Equal(t, "봉준호", movie.Director)
	assert.Equal(t, []string{"코미디", "스릴러", "드라마"}, movie.Genres)
	assert.Equal(t, 2019, movie.Year)
}

func TestGetMovieDetail_NoDirectorDefaultsEmpty(t *testing.T) {
	client, _, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":1,"title":"t","release_date":"2020-01-01","genres":[],"credits":{"crew":[{"job":"Producer","name":"p"}]}}`))
	})
	defer done()

	movie, err := client.GetMovieDetail(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, movie.Director)
}

func TestGetMovieDetail_NotFound(t *testing.T) {
	client, _, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer done()

	_, err := client.GetMovieDetail(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrNotFound)
}
