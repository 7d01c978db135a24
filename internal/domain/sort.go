package domain

import "slices"

// SortRecords returns a new slice ordered by the given option. The input is
// never mutated. Ordering is stable, with one explicit tie-break: when two
// records carry the same rating under rating-high or rating-low, the more
// recently created record comes first. The tie-break direction is the same
// for both rating sorts on purpose - among equally rated works the latest
// journal entry is considered the most relevant, regardless of whether the
// primary sort ascends or descends.
//
// Creation timestamps are compared as instants, so records written with
// differing timestamp formatting still order correctly.
func SortRecords(records []Record, option SortOption) []Record {
	out := slices.Clone(records)

	switch option {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b Record) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b Record) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortRatingHigh:
		slices.SortStableFunc(out, func(a, b Record) int {
			if a.Rating != b.Rating {
				return b.Rating - a.Rating
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortRatingLow:
		slices.SortStableFunc(out, func(a, b Record) int {
			if a.Rating != b.Rating {
				return a.Rating - b.Rating
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}
