package domain

import "slices"

// FilterRecords applies the filter to a record collection and returns a new
// slice with every record that passes all specified predicates. Predicates
// combine with AND across fields; within EmotionTags a non-empty intersection
// is enough. The input slice and its elements are never mutated, and the
// relative order of surviving records is preserved.
func FilterRecords(records []Record, filter RecordFilter) []Record {
	out := make([]Record, 0, len(records))
	for i := range records {
		if matchesFilter(&records[i], &filter) {
			out = append(out, records[i])
		}
	}
	return out
}

func matchesFilter(r *Record, f *RecordFilter) bool {
	if f.WorkType != nil && r.WorkType != *f.WorkType {
		return false
	}
	if f.RatingMin != nil && r.Rating < *f.RatingMin {
		return false
	}
	if f.RatingMax != nil && r.Rating > *f.RatingMax {
		return false
	}
	if f.Year != nil && r.Work.Year != *f.Year {
		return false
	}

	// An empty tag list means no constraint, not "must have zero tags".
	if len(f.EmotionTags) > 0 {
		matched := slices.ContainsFunc(f.EmotionTags, func(tag EmotionTag) bool {
			return slices.Contains(r.EmotionTags, tag)
		})
		if !matched {
			return false
		}
	}

	return true
}
