package kakao

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

const (
	defaultBaseURL = "https://dapi.kakao.com/v3/search/book"

	defaultTimeout = 30 * time.Second
)

// Client is a rate-limited Kakao book search client. Authentication uses the
// KakaoAK header scheme, unrelated to the TMDB query-parameter scheme - the
// two adapters stay independent on purpose.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// New creates a new Kakao client. The key may be empty; requests then fail
// with a configuration error before any network attempt.
func New(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		// Kakao allows generous per-app quotas; 10 rps with a small burst
		// keeps interactive search responsive without tripping limits.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
		logger:  logger,
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// doRequest executes a GET against the Kakao book API with rate limiting.
// The API key check happens before any network side effect.
func (c *Client) doRequest(ctx context.Context, query url.Values) (*searchResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("kakao request", "target", query.Get("target"))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var out searchResponse
	if err := json.UnmarshalRead(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &out, nil
}

// documentToBook converts one Kakao document into the domain Book shape.
func documentToBook(doc *rawDocument) domain.Book {
	// The isbn field is whitespace-delimited and may carry both ISBN-10 and
	// ISBN-13; the first non-empty token is the canonical id, falling back
	// to the title when no token exists.
	bookID := firstISBNToken(doc.ISBN)
	if bookID == "" {
		bookID = doc.Title
	}

	author := ""
	if len(doc.Authors) > 0 {
		author = doc.Authors[0]
	}

	return domain.Book{
		ID:       bookID,
		Title:    doc.Title,
		CoverURL: doc.Thumbnail,
		Year:     parseYear(doc.Datetime),
		Author:   author,
		Genres:   []string{},
	}
}

// firstISBNToken returns the first non-empty whitespace-delimited token.
func firstISBNToken(isbn string) string {
	for _, token := range strings.Fields(isbn) {
		return token
	}
	return ""
}

// parseYear extracts the year from a Kakao datetime (RFC 3339).
// Empty or unparseable values yield 0.
func parseYear(datetime string) int {
	if datetime == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, datetime)
	if err != nil {
		return 0
	}
	return t.Year()
}
