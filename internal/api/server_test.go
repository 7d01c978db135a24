package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordcandy/recordcandy-server/internal/domain"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
	"github.com/recordcandy/recordcandy-server/internal/service"
	"github.com/recordcandy/recordcandy-server/internal/store"
	"github.com/recordcandy/recordcandy-server/internal/validation"
)

// stubMovieCatalog serves canned movie results. It satisfies both the
// handler's MovieCatalog and the search service's MovieSearcher.
type stubMovieCatalog struct {
	movies []domain.Movie
	err    error
}

func (c *stubMovieCatalog) SearchMovies(_ context.Context, _ string) ([]domain.Movie, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.movies, nil
}

func (c *stubMovieCatalog) GetMovieDetail(_ context.Context, movieID string) (domain.Movie, error) {
	if c.err != nil {
		return domain.Movie{}, c.err
	}
	for _, m := range c.movies {
		if m.ID == movieID {
			return m, nil
		}
	}
	return domain.Movie{}, tmdb.ErrNotFound
}

type stubBookCatalog struct {
	books []domain.Book
	err   error
}

func (c *stubBookCatalog) SearchBooks(_ context.Context, _ string) ([]domain.Book, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.books, nil
}

func (c *stubBookCatalog) GetBookDetail(_ context.Context, isbn string) (domain.Book, error) {
	if c.err != nil {
		return domain.Book{}, c.err
	}
	for _, b := range c.books {
		if b.ID == isbn {
			return b, nil
		}
	}
	return domain.Book{}, kakao.ErrNotFound
}

// testServer bundles the API server with its humatest wrapper and stubs.
type testServer struct {
	*Server
	api    humatest.TestAPI
	movies *stubMovieCatalog
	books  *stubBookCatalog
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.DiscardHandler)

	records, err := service.NewRecordService(context.Background(), st, logger)
	require.NoError(t, err)

	movies := &stubMovieCatalog{movies: []domain.Movie{
		{ID: "496243", Title: "기생충", Year: 2019, PosterURL: "https://image.tmdb.org/t/p/w500/x.jpg", Director: "봉준호", Genres: []string{"드라마"}},
	}}
	books := &stubBookCatalog{books: []domain.Book{
		{ID: "8983920718", Title: "해리포터와 마법사의 돌", Year: 1999, CoverURL: "https://covers.example/hp1.jpg", Author: "J.K. 롤링"},
	}}

	search := service.NewSearchService(movies, books, time.Millisecond, logger)

	s := NewServer(st, records, search, movies, books, validation.New(), logger)
	t.Cleanup(s.Close)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		movies: movies,
		books:  books,
	}
}

func createMovieRecord(t *testing.T, ts *testServer, rating int) RecordResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/records", map[string]any{
		"work_type": "movie",
		"work": map[string]any{
			"id":         "496243",
			"title":      "기생충",
			"year":       2019,
			"poster_url": "https://image.tmdb.org/t/p/w500/x.jpg",
			"director":   "봉준호",
		},
		"rating":          rating,
		"review_date":     "2026-02-14T00:00:00Z",
		"one_line_review": "완벽한 영화",
		"emotion_tags":    []string{"thrilled", "moved"},
		"rewatch_intent":  true,
	})
	require.Equal(t, http.StatusOK, resp.Code, "create failed: %s", resp.Body.String())

	var record RecordResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &record))
	return record
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Components["database"].Status)
}

func TestCreateRecord(t *testing.T) {
	ts := setupTestServer(t)

	record := createMovieRecord(t, ts, 9)

	assert.NotEmpty(t, record.ID)
	assert.Contains(t, record.ID, "rec-")
	assert.Equal(t, "movie", record.WorkType)
	assert.Equal(t, "기생충", record.Work.Title)
	assert.Equal(t, 9, record.Rating)
	assert.Equal(t, []string{"thrilled", "moved"}, record.EmotionTags)
	assert.False(t, record.CreatedAt.IsZero())
	assert.True(t, record.CreatedAt.Equal(record.UpdatedAt))
}

func TestCreateRecord_ValidationErrors(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "rating out of range",
			body: map[string]any{
				"work_type": "movie",
				"work":      map[string]any{"id": "1", "title": "x"},
				"rating":    11,
			},
		},
		{
			name: "unknown work type",
			body: map[string]any{
				"work_type": "album",
				"work":      map[string]any{"id": "1", "title": "x"},
				"rating":    5,
			},
		},
		{
			name: "unknown emotion tag",
			body: map[string]any{
				"work_type":    "movie",
				"work":         map[string]any{"id": "1", "title": "x"},
				"rating":       5,
				"emotion_tags": []string{"ecstatic"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Post("/api/v1/records", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		})
	}
}

func TestGetRecord(t *testing.T) {
	ts := setupTestServer(t)
	created := createMovieRecord(t, ts, 9)

	resp := ts.api.Get("/api/v1/records/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var record RecordResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &record))
	assert.Equal(t, created.ID, record.ID)
}

func TestGetRecord_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/records/rec-missing")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListRecords_FilterAndSort(t *testing.T) {
	ts := setupTestServer(t)
	createMovieRecord(t, ts, 9)
	createMovieRecord(t, ts, 5)
	createMovieRecord(t, ts, 7)

	resp := ts.api.Get("/api/v1/records?rating_min=6&sort=rating-high")
	require.Equal(t, http.StatusOK, resp.Code)

	var list ListRecordsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, 9, list.Records[0].Rating)
	assert.Equal(t, 7, list.Records[1].Rating)
}

func TestListRecords_UnknownSortRejected(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/records?sort=alphabetical")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateRecord(t *testing.T) {
	ts := setupTestServer(t)
	created := createMovieRecord(t, ts, 9)

	resp := ts.api.Patch("/api/v1/records/"+created.ID, map[string]any{
		"rating": 3,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var result UpdateRecordResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.True(t, result.Updated)
	require.NotNil(t, result.Record)
	assert.Equal(t, 3, result.Record.Rating)
	// Untouched fields survive.
	assert.Equal(t, "완벽한 영화", result.Record.OneLineReview)
	assert.True(t, result.Record.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateRecord_MissingIDSucceedsWithoutChange(t *testing.T) {
	ts := setupTestServer(t)
	createMovieRecord(t, ts, 9)

	resp := ts.api.Patch("/api/v1/records/rec-missing", map[string]any{
		"rating": 1,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result UpdateRecordResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.False(t, result.Updated)
	assert.Nil(t, result.Record)

	// The collection is untouched.
	list := ts.api.Get("/api/v1/records")
	var listBody ListRecordsResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listBody))
	require.Equal(t, 1, listBody.Total)
	assert.Equal(t, 9, listBody.Records[0].Rating)
}

func TestDeleteRecord(t *testing.T) {
	ts := setupTestServer(t)
	created := createMovieRecord(t, ts, 9)

	resp := ts.api.Delete("/api/v1/records/" + created.ID)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	get := ts.api.Get("/api/v1/records/" + created.ID)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestDeleteRecord_MissingIDSucceeds(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Delete("/api/v1/records/rec-missing")
	assert.Equal(t, http.StatusNoContent, resp.Code)
}
