package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

// SearchMovies searches the TMDB catalog for movies matching the query.
//
// The query is trimmed first; an empty or whitespace-only query resolves to
// an empty result without any network call. Search results carry no director
// and no genres - both are resolved only by GetMovieDetail.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]domain.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Movie{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("region", c.region)

	var resp searchResponse
	if err := c.doRequest(ctx, "/search/movie", params, &resp); err != nil {
		return nil, wrapError("search", "", err)
	}

	c.logger.Debug("tmdb search results",
		"query", query,
		"count", len(resp.Results),
	)

	movies := make([]domain.Movie, 0, len(resp.Results))
	for i := range resp.Results {
		r := &resp.Results[i]
		movies = append(movies, domain.Movie{
			ID:        strconv.FormatInt(r.ID, 10),
			Title:     r.Title,
			PosterURL: posterURL(r.PosterPath),
			Year:      parseYear(r.ReleaseDate),
			Director:  "",
			Genres:    []string{},
		})
	}

	return movies, nil
}

// GetMovieDetail fetches a single movie by TMDB id, resolving the director
// from the appended credits (first crew entry whose job is "Director") and
// the full genre names.
func (c *Client) GetMovieDetail(ctx context.Context, movieID string) (domain.Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits")

	var resp rawMovieDetail
	if err := c.doRequest(ctx, "/movie/"+url.PathEscape(movieID), params, &resp); err != nil {
		return domain.Movie{}, wrapError("getDetail", movieID, err)
	}

	director := ""
	for _, crew := range resp.Credits.Crew {
		if crew.Job == "Director" {
			director = crew.Name
			break
		}
	}

	genres := make([]string, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, g.Name)
	}

	return domain.Movie{
		ID:        strconv.FormatInt(resp.ID, 10),
		Title:     resp.Title,
		PosterURL: posterURL(resp.PosterPath),
		Year:      parseYear(resp.ReleaseDate),
		Director:  director,
		Genres:    genres,
	}, nil
}
