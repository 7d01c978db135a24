package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

// ErrSuperseded reports that a newer search replaced this one before it
// completed. Callers should simply drop the result.
var ErrSuperseded = errors.New("search superseded by a newer query")

// defaultSettleWindow coalesces rapid successive searches: only the last
// query within the window reaches the providers.
const defaultSettleWindow = 300 * time.Millisecond

// MovieSearcher is the movie-catalog side of the search coordinator.
type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string) ([]domain.Movie, error)
}

// BookSearcher is the book-catalog side of the search coordinator.
type BookSearcher interface {
	SearchBooks(ctx context.Context, query string) ([]domain.Book, error)
}

// SearchResult carries both providers' outcomes for one query. The two
// lookups are independent: either side may fail while the other succeeds,
// and neither failure cancels the other lookup.
type SearchResult struct {
	Query    string
	Movies   []domain.Movie
	Books    []domain.Book
	MovieErr error
	BookErr  error
}

// SearchService coordinates debounced searches against the movie and book
// providers. Every call takes a monotonically increasing generation and
// cancels the previous in-flight call; a call overtaken during its settle
// window or its provider round-trip finishes with ErrSuperseded, so a
// late-arriving response can never overwrite a newer query's results.
type SearchService struct {
	movies MovieSearcher
	books  BookSearcher
	logger *slog.Logger
	settle time.Duration

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

// NewSearchService creates a search coordinator. A non-positive settle
// window falls back to the default; a nil logger discards log output.
func NewSearchService(movies MovieSearcher, books BookSearcher, settle time.Duration, logger *slog.Logger) *SearchService {
	if settle <= 0 {
		settle = defaultSettleWindow
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SearchService{
		movies: movies,
		books:  books,
		logger: logger,
		settle: settle,
	}
}

// Search runs the query against both providers after the settle window
// elapses. Returns ErrSuperseded when a newer call arrives first.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	runCtx, generation := s.begin(ctx)
	defer s.finish(generation)

	// Settle window: wait out further keystrokes before spending network
	// calls. A newer call cancels runCtx and this one bails here.
	timer := time.NewTimer(s.settle)
	defer timer.Stop()
	select {
	case <-runCtx.Done():
		return nil, s.doneErr(ctx)
	case <-timer.C:
	}

	result := &SearchResult{Query: query}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Movies, result.MovieErr = s.movies.SearchMovies(runCtx, query)
	}()
	go func() {
		defer wg.Done()
		result.Books, result.BookErr = s.books.SearchBooks(runCtx, query)
	}()
	wg.Wait()

	// A cancellation that raced the provider calls means the caller gave
	// up or a newer query overtook this one.
	if runCtx.Err() != nil && (ctx.Err() != nil || !s.isCurrent(generation)) {
		return nil, s.doneErr(ctx)
	}

	if result.MovieErr != nil {
		s.logger.Warn("movie search failed", "query", query, "error", result.MovieErr)
	}
	if result.BookErr != nil {
		s.logger.Warn("book search failed", "query", query, "error", result.BookErr)
	}

	return result, nil
}

// begin registers a new search generation, canceling the previous in-flight
// one, and returns the context the new search must run under.
func (s *SearchService) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPrev != nil {
		s.cancelPrev()
	}

	s.generation++
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel
	return runCtx, s.generation
}

// finish releases the cancel func of a completed search if it still belongs
// to the current generation.
func (s *SearchService) finish(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation && s.cancelPrev != nil {
		s.cancelPrev()
		s.cancelPrev = nil
	}
}

// isCurrent reports whether the generation is still the latest issued.
func (s *SearchService) isCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == generation
}

// doneErr distinguishes caller cancellation from supersession.
func (s *SearchService) doneErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrSuperseded
}
