// Package kakao provides a client for the Kakao book search API, normalizing
// documents into the domain Book shape.
package kakao

// searchResponse is the raw Kakao book search API response.
type searchResponse struct {
	Meta      responseMeta  `json:"meta"`
	Documents []rawDocument `json:"documents"`
}

// responseMeta holds pagination metadata.
type responseMeta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

// rawDocument is a single book document from Kakao search.
type rawDocument struct {
	Title       string   `json:"title"`
	Contents    string   `json:"contents"`
	URL         string   `json:"url"`
	ISBN        string   `json:"isbn"` // Whitespace-delimited, possibly multiple ISBNs
	Datetime    string   `json:"datetime"`
	Authors     []string `json:"authors"`
	Publisher   string   `json:"publisher"`
	Translators []string `json:"translators"`
	Price       int      `json:"price"`
	SalePrice   int      `json:"sale_price"`
	Thumbnail   string   `json:"thumbnail"`
	Status      string   `json:"status"`
}
