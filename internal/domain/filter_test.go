package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func testRecords() []Record {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Record{
		{
			ID:          "rec-1",
			WorkType:    WorkTypeMovie,
			Work:        Work{ID: "496243", Title: "기생충", Year: 2019, Director: "봉준호"},
			Rating:      9,
			EmotionTags: []EmotionTag{EmotionThrilled, EmotionMoved},
			CreatedAt:   base,
		},
		{
			ID:          "rec-2",
			WorkType:    WorkTypeBook,
			Work:        Work{ID: "8983920718", Title: "해리 포터와 마법사의 돌", Year: 1999, Author: "J.K. 롤링"},
			Rating:      7,
			EmotionTags: []EmotionTag{EmotionHappy, EmotionNostalgic},
			CreatedAt:   base.Add(time.Hour),
		},
		{
			ID:        "rec-3",
			WorkType:  WorkTypeMovie,
			Work:      Work{ID: "603", Title: "매트릭스", Year: 1999},
			Rating:    5,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestFilterRecords_EmptyFilterReturnsAll(t *testing.T) {
	records := testRecords()

	got := FilterRecords(records, RecordFilter{})

	assert.Equal(t, records, got)
}

func TestFilterRecords_ByWorkType(t *testing.T) {
	got := FilterRecords(testRecords(), RecordFilter{WorkType: ptr(WorkTypeBook)})

	assert.Len(t, got, 1)
	assert.Equal(t, "rec-2", got[0].ID)
}

func TestFilterRecords_RatingBounds(t *testing.T) {
	records := testRecords()

	assert.Len(t, FilterRecords(records, RecordFilter{RatingMin: ptr(7)}), 2)
	assert.Len(t, FilterRecords(records, RecordFilter{RatingMax: ptr(7)}), 2)

	got := FilterRecords(records, RecordFilter{RatingMin: ptr(6), RatingMax: ptr(8)})
	assert.Len(t, got, 1)
	assert.Equal(t, "rec-2", got[0].ID)
}

func TestFilterRecords_RatingBoundsAreInclusive(t *testing.T) {
	got := FilterRecords(testRecords(), RecordFilter{RatingMin: ptr(9), RatingMax: ptr(9)})

	assert.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].ID)
}

func TestFilterRecords_ByWorkYear(t *testing.T) {
	got := FilterRecords(testRecords(), RecordFilter{Year: ptr(1999)})

	assert.Len(t, got, 2)
	assert.Equal(t, "rec-2", got[0].ID)
	assert.Equal(t, "rec-3", got[1].ID)
}

func TestFilterRecords_EmotionTagsIntersect(t *testing.T) {
	got := FilterRecords(testRecords(), RecordFilter{
		EmotionTags: []EmotionTag{EmotionNostalgic, EmotionSad},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "rec-2", got[0].ID)
}

func TestFilterRecords_EmptyEmotionTagsIsNoConstraint(t *testing.T) {
	records := testRecords()

	// An explicitly empty tag list must behave like an absent filter, not
	// like "records with zero tags".
	got := FilterRecords(records, RecordFilter{EmotionTags: []EmotionTag{}})

	assert.Equal(t, FilterRecords(records, RecordFilter{}), got)
}

func TestFilterRecords_PredicatesCombineWithAND(t *testing.T) {
	got := FilterRecords(testRecords(), RecordFilter{
		WorkType: ptr(WorkTypeMovie),
		Year:     ptr(1999),
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "rec-3", got[0].ID)

	got = FilterRecords(testRecords(), RecordFilter{
		WorkType:  ptr(WorkTypeBook),
		RatingMin: ptr(9),
	})
	assert.Empty(t, got)
}

func TestFilterRecords_DoesNotMutateInput(t *testing.T) {
	records := testRecords()
	want := testRecords()

	FilterRecords(records, RecordFilter{WorkType: ptr(WorkTypeMovie), RatingMin: ptr(8)})

	assert.Equal(t, want, records)
}
