package domain

// WorkType discriminates the two kinds of creative works a record can reference.
type WorkType string

// Work type values.
const (
	WorkTypeMovie WorkType = "movie"
	WorkTypeBook  WorkType = "book"
)

// Valid reports whether the work type is one of the known values.
func (t WorkType) Valid() bool {
	return t == WorkTypeMovie || t == WorkTypeBook
}

// Movie is a movie from the external catalog, normalized by the TMDB adapter.
type Movie struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	PosterURL string   `json:"poster_url"` // Empty when the catalog has no poster
	Year      int      `json:"year"`       // 0 when the release date was missing or unparseable
	Director  string   `json:"director"`   // Empty in search results; resolved by the detail lookup
	Genres    []string `json:"genres"`
}

// Book is a book from the external catalog, normalized by the Kakao adapter.
type Book struct {
	ID       string   `json:"id"` // First ISBN token, or the title when no ISBN exists
	Title    string   `json:"title"`
	CoverURL string   `json:"cover_url"`
	Year     int      `json:"year"` // 0 when the publish date was missing or unparseable
	Author   string   `json:"author"`
	Genres   []string `json:"genres"`
}

// Work is the catalog snapshot owned by a Record. It is copied at record
// creation and never refreshed afterward, so edits to a record do not pick up
// catalog changes. The variant-specific fields (poster/director vs.
// cover/author) are discriminated by the owning Record's WorkType, not by
// probing which fields are set.
type Work struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Genres    []string `json:"genres"`
	PosterURL string   `json:"poster_url,omitempty"` // movie variant
	Director  string   `json:"director,omitempty"`   // movie variant
	CoverURL  string   `json:"cover_url,omitempty"`  // book variant
	Author    string   `json:"author,omitempty"`     // book variant
}

// MovieWork builds a Work snapshot from a normalized movie.
func MovieWork(m Movie) Work {
	return Work{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Genres:    m.Genres,
		PosterURL: m.PosterURL,
		Director:  m.Director,
	}
}

// BookWork builds a Work snapshot from a normalized book.
func BookWork(b Book) Work {
	return Work{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		Genres:   b.Genres,
		CoverURL: b.CoverURL,
		Author:   b.Author,
	}
}
