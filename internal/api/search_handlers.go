package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/recordcandy/recordcandy-server/internal/domain"
	domainerrors "github.com/recordcandy/recordcandy-server/internal/errors"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
	"github.com/recordcandy/recordcandy-server/internal/service"
)

// MovieCatalog is the movie metadata provider used by the search handlers.
type MovieCatalog interface {
	SearchMovies(ctx context.Context, query string) ([]domain.Movie, error)
	GetMovieDetail(ctx context.Context, movieID string) (domain.Movie, error)
}

// BookCatalog is the book metadata provider used by the search handlers.
type BookCatalog interface {
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
	GetBookDetail(ctx context.Context, isbn string) (domain.Book, error)
}

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchAll",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Combined search",
		Description: "Searches movies and books together. Rapid successive queries coalesce: only the latest one reaches the providers.",
		Tags:        []string{"Search"},
	}, s.handleSearchAll)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchMovies",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/movies",
		Summary:     "Search movies",
		Description: "Searches TMDB for movies",
		Tags:        []string{"Search"},
	}, s.handleSearchMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMovieDetail",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/movies/{id}",
		Summary:     "Get movie detail",
		Description: "Returns a movie with director and genres resolved",
		Tags:        []string{"Search"},
	}, s.handleGetMovieDetail)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/books",
		Summary:     "Search books",
		Description: "Searches the Kakao book catalog",
		Tags:        []string{"Search"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBookDetail",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/books/{isbn}",
		Summary:     "Get book detail",
		Description: "Returns a book looked up by ISBN",
		Tags:        []string{"Search"},
	}, s.handleGetBookDetail)
}

// === DTOs ===

// MovieResponse contains movie search data in API responses.
type MovieResponse struct {
	ID        string   `json:"id" doc:"TMDB movie ID"`
	Title     string   `json:"title" doc:"Movie title"`
	Year      int      `json:"year" doc:"Release year, 0 when unknown"`
	PosterURL string   `json:"poster_url,omitempty" doc:"Poster image URL"`
	Director  string   `json:"director,omitempty" doc:"Director name, set on detail lookups"`
	Genres    []string `json:"genres,omitempty" doc:"Genre names, set on detail lookups"`
}

// BookResponse contains book search data in API responses.
type BookResponse struct {
	ID       string   `json:"id" doc:"First ISBN token, or title when no ISBN exists"`
	Title    string   `json:"title" doc:"Book title"`
	Year     int      `json:"year" doc:"Publication year, 0 when unknown"`
	CoverURL string   `json:"cover_url,omitempty" doc:"Cover image URL"`
	Author   string   `json:"author,omitempty" doc:"First listed author"`
	Genres   []string `json:"genres,omitempty" doc:"Genre names"`
}

// SearchInput contains the query for a search.
type SearchInput struct {
	Query string `query:"query" doc:"Search query"`
}

// CombinedSearchResponse contains results from both providers.
type CombinedSearchResponse struct {
	Query  string          `json:"query" doc:"The query that produced these results"`
	Movies []MovieResponse `json:"movies" doc:"Movie results"`
	Books  []BookResponse  `json:"books" doc:"Book results"`
}

// CombinedSearchOutput wraps the combined search response for Huma.
type CombinedSearchOutput struct {
	Body CombinedSearchResponse
}

// MovieSearchOutput wraps movie search results for Huma.
type MovieSearchOutput struct {
	Body struct {
		Movies []MovieResponse `json:"movies" doc:"Movie results"`
	}
}

// MovieDetailInput contains parameters for a movie detail lookup.
type MovieDetailInput struct {
	ID string `path:"id" doc:"TMDB movie ID"`
}

// MovieDetailOutput wraps a movie detail response for Huma.
type MovieDetailOutput struct {
	Body MovieResponse
}

// BookSearchOutput wraps book search results for Huma.
type BookSearchOutput struct {
	Body struct {
		Books []BookResponse `json:"books" doc:"Book results"`
	}
}

// BookDetailInput contains parameters for a book detail lookup.
type BookDetailInput struct {
	ISBN string `path:"isbn" doc:"ISBN to look up"`
}

// BookDetailOutput wraps a book detail response for Huma.
type BookDetailOutput struct {
	Body BookResponse
}

// === Handlers ===

func (s *Server) handleSearchAll(ctx context.Context, input *SearchInput) (*CombinedSearchOutput, error) {
	result, err := s.search.Search(ctx, input.Query)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			return nil, domainerrors.Conflict("search superseded by a newer query")
		}
		return nil, err
	}

	// A provider failing does not fail the whole search; its result set
	// is simply empty.
	if result.MovieErr != nil {
		s.logger.Warn("movie results unavailable", "query", input.Query, "error", result.MovieErr)
	}
	if result.BookErr != nil {
		s.logger.Warn("book results unavailable", "query", input.Query, "error", result.BookErr)
	}

	return &CombinedSearchOutput{Body: CombinedSearchResponse{
		Query:  result.Query,
		Movies: toMovieResponses(result.Movies),
		Books:  toBookResponses(result.Books),
	}}, nil
}

func (s *Server) handleSearchMovies(ctx context.Context, input *SearchInput) (*MovieSearchOutput, error) {
	movies, err := s.movies.SearchMovies(ctx, input.Query)
	if err != nil {
		return nil, providerError("TMDB", err)
	}

	out := &MovieSearchOutput{}
	out.Body.Movies = toMovieResponses(movies)
	return out, nil
}

func (s *Server) handleGetMovieDetail(ctx context.Context, input *MovieDetailInput) (*MovieDetailOutput, error) {
	movie, err := s.movies.GetMovieDetail(ctx, input.ID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, domainerrors.NotFoundf("movie %s not found", input.ID)
		}
		return nil, providerError("TMDB", err)
	}

	return &MovieDetailOutput{Body: toMovieResponse(movie)}, nil
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchInput) (*BookSearchOutput, error) {
	books, err := s.books.SearchBooks(ctx, input.Query)
	if err != nil {
		return nil, providerError("Kakao", err)
	}

	out := &BookSearchOutput{}
	out.Body.Books = toBookResponses(books)
	return out, nil
}

func (s *Server) handleGetBookDetail(ctx context.Context, input *BookDetailInput) (*BookDetailOutput, error) {
	book, err := s.books.GetBookDetail(ctx, input.ISBN)
	if err != nil {
		if errors.Is(err, kakao.ErrNotFound) {
			return nil, domainerrors.NotFoundf("book %s not found", input.ISBN)
		}
		return nil, providerError("Kakao", err)
	}

	return &BookDetailOutput{Body: toBookResponse(book)}, nil
}

// === Helpers ===

// providerError maps metadata client failures onto domain errors: a missing
// key is a configuration problem, everything else an upstream one.
func providerError(name string, err error) error {
	if errors.Is(err, tmdb.ErrNoAPIKey) || errors.Is(err, kakao.ErrNoAPIKey) {
		return domainerrors.Configuration(name + " API key is not configured")
	}

	var tmdbStatus *tmdb.StatusError
	if errors.As(err, &tmdbStatus) {
		return domainerrors.Provider(name+" request failed", tmdbStatus.Status)
	}
	var kakaoStatus *kakao.StatusError
	if errors.As(err, &kakaoStatus) {
		return domainerrors.Provider(name+" request failed", kakaoStatus.Status)
	}

	return domainerrors.Wrap(err, domainerrors.CodeProvider, name+" request failed")
}

func toMovieResponse(m domain.Movie) MovieResponse {
	return MovieResponse{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		PosterURL: m.PosterURL,
		Director:  m.Director,
		Genres:    m.Genres,
	}
}

func toMovieResponses(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = toMovieResponse(m)
	}
	return out
}

func toBookResponse(b domain.Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		CoverURL: b.CoverURL,
		Author:   b.Author,
		Genres:   b.Genres,
	}
}

func toBookResponses(books []domain.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}
