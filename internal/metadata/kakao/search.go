package kakao

import (
	"context"
	"net/url"
	"strings"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

const searchPageSize = "20"

// SearchBooks searches the Kakao catalog for books matching the query.
//
// The query is trimmed first; an empty or whitespace-only query resolves to
// an empty result without any network call.
func (c *Client) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Book{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", searchPageSize)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, wrapError("search", "", err)
	}

	c.logger.Debug("kakao search results",
		"query", query,
		"total_count", resp.Meta.TotalCount,
	)

	books := make([]domain.Book, 0, len(resp.Documents))
	for i := range resp.Documents {
		books = append(books, documentToBook(&resp.Documents[i]))
	}

	return books, nil
}

// GetBookDetail fetches a single book by ISBN using an exact-identifier
// search. Zero matching documents is a not-found error, distinguishable from
// transport failures.
func (c *Client) GetBookDetail(ctx context.Context, isbn string) (domain.Book, error) {
	params := url.Values{}
	params.Set("query", isbn)
	params.Set("target", "isbn")
	params.Set("size", "1")

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return domain.Book{}, wrapError("getDetail", isbn, err)
	}

	if len(resp.Documents) == 0 {
		return domain.Book{}, wrapError("getDetail", isbn, ErrNotFound)
	}

	return documentToBook(&resp.Documents[0]), nil
}
