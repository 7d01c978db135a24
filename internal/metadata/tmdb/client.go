package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	imageBaseURL    = "https://image.tmdb.org/t/p/w500"
	defaultLanguage = "ko-KR"
	defaultRegion   = "KR"

	defaultTimeout = 30 * time.Second
)

// Client is a rate-limited TMDB API client.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	baseURL  string
	apiKey   string
	language string
	region   string
}

// Config holds TMDB client settings. APIKey may be empty; requests then fail
// with a configuration error before any network attempt.
type Config struct {
	APIKey   string
	Language string // Defaults to ko-KR
	Region   string // Defaults to KR
}

// New creates a new TMDB client.
// Rate limited to 40 requests per 10 seconds per TMDB guidance.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 10),
		logger:   logger,
		baseURL:  defaultBaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		region:   cfg.Region,
	}
}

// doRequest executes a GET against the TMDB API with rate limiting.
// The API key check happens before any network side effect.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, dest any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode}
	}

	if err := json.UnmarshalRead(resp.Body, dest); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// posterURL turns a TMDB poster path into an absolute image URL, or returns
// the empty string when the catalog has no poster.
func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + path
}

// parseYear extracts the year from a TMDB release date ("2006-01-02").
// Empty or unparseable dates yield 0.
func parseYear(releaseDate string) int {
	if releaseDate == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", releaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}
