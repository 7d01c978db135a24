// Package tmdb provides a client for the TMDB movie catalog, normalizing
// search and detail responses into the domain Movie shape.
package tmdb

// searchResponse is the raw TMDB search API response.
type searchResponse struct {
	Page         int        `json:"page"`
	Results      []rawMovie `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// rawMovie is a single result from TMDB movie search.
type rawMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"` // nullable in the API; empty when null
	ReleaseDate string `json:"release_date"`
	GenreIDs    []int  `json:"genre_ids"`
}

// rawMovieDetail is the TMDB movie detail response with credits appended.
type rawMovieDetail struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	PosterPath  string     `json:"poster_path"`
	ReleaseDate string     `json:"release_date"`
	Genres      []rawGenre `json:"genres"`
	Credits     rawCredits `json:"credits"`
}

// rawGenre is an id+name pair from the detail response.
type rawGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// rawCredits holds the crew list from append_to_response=credits.
type rawCredits struct {
	Crew []rawCrewMember `json:"crew"`
}

// rawCrewMember is a single crew entry.
type rawCrewMember struct {
	Job  string `json:"job"`
	Name string `json:"name"`
}
