// Package domain contains the canonical entity shapes for the record journal:
// works, records, filters, and the pure filter/sort engines that operate on a
// user's record collection.
package domain

import (
	"slices"
	"time"
)

// EmotionTag describes a subjective reaction to a work. The vocabulary is
// fixed; records keep tags in insertion order and duplicates are not
// deduplicated by the model.
type EmotionTag string

// The eight-term emotion vocabulary.
const (
	EmotionHappy     EmotionTag = "happy"
	EmotionSad       EmotionTag = "sad"
	EmotionInspired  EmotionTag = "inspired"
	EmotionThrilled  EmotionTag = "thrilled"
	EmotionPeaceful  EmotionTag = "peaceful"
	EmotionNostalgic EmotionTag = "nostalgic"
	EmotionMoved     EmotionTag = "moved"
	EmotionFunny     EmotionTag = "funny"
)

// EmotionTags lists every valid tag, in canonical order.
var EmotionTags = []EmotionTag{
	EmotionHappy,
	EmotionSad,
	EmotionInspired,
	EmotionThrilled,
	EmotionPeaceful,
	EmotionNostalgic,
	EmotionMoved,
	EmotionFunny,
}

// Valid reports whether the tag belongs to the fixed vocabulary.
func (t EmotionTag) Valid() bool {
	return slices.Contains(EmotionTags, t)
}

// Record is a user's journal entry for one work: the owned work snapshot plus
// rating, review, emotion and rewatch metadata.
//
// Rating is semantically 1-10 but deliberately not enforced here or in
// storage; the input-validation boundary is responsible for range checks.
// ID uniqueness is the caller's responsibility - the lifecycle manager does
// not check, and duplicate ids silently coexist.
type Record struct {
	CreatedAt     time.Time    `json:"created_at"`  // Set once at creation, immutable afterward
	UpdatedAt     time.Time    `json:"updated_at"`  // Refreshed on every mutation
	ReviewDate    time.Time    `json:"review_date"` // When the user experienced the work
	ID            string       `json:"id"`
	WorkType      WorkType     `json:"work_type"`
	Work          Work         `json:"work"`
	Rating        int          `json:"rating"`
	OneLineReview string       `json:"one_line_review,omitempty"`
	EmotionTags   []EmotionTag `json:"emotion_tags"`
	RewatchIntent bool         `json:"rewatch_intent"`
}

// ImageURL returns the display image for the record's work: the poster for
// movies, the cover for books.
func (r *Record) ImageURL() string {
	switch r.WorkType {
	case WorkTypeMovie:
		return r.Work.PosterURL
	case WorkTypeBook:
		return r.Work.CoverURL
	}
	return ""
}

// Creator returns the primary creator of the record's work: the director for
// movies, the author for books.
func (r *Record) Creator() string {
	switch r.WorkType {
	case WorkTypeMovie:
		return r.Work.Director
	case WorkTypeBook:
		return r.Work.Author
	}
	return ""
}

// Clone returns a deep copy of the record. Slices are copied so mutations of
// the clone never leak into the original.
func (r *Record) Clone() Record {
	c := *r
	c.EmotionTags = slices.Clone(r.EmotionTags)
	c.Work.Genres = slices.Clone(r.Work.Genres)
	return c
}

// RecordFilter selects a subset of a record collection. Every field is
// optional; a nil field means no constraint. An explicitly empty EmotionTags
// slice is also treated as no constraint, not as "must have zero tags".
type RecordFilter struct {
	WorkType    *WorkType
	RatingMin   *int
	RatingMax   *int
	Year        *int
	EmotionTags []EmotionTag
}

// SortOption names one of the four ordering policies for a record collection.
type SortOption string

// Sort options.
const (
	SortNewest     SortOption = "newest"
	SortOldest     SortOption = "oldest"
	SortRatingHigh SortOption = "rating-high"
	SortRatingLow  SortOption = "rating-low"
)

// Valid reports whether the sort option is one of the known values.
func (o SortOption) Valid() bool {
	switch o {
	case SortNewest, SortOldest, SortRatingHigh, SortRatingLow:
		return true
	}
	return false
}
