package store

import (
	"context"
	"errors"

	"github.com/recordcandy/recordcandy-server/internal/domain"
)

// recordsKey is the single namespaced key holding the serialized collection.
const recordsKey = "records:v1"

// LoadRecords reads the full record collection. A database that has never
// been written yields an empty collection, not an error.
func (s *Store) LoadRecords(_ context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if err := s.get([]byte(recordsKey), &records); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []domain.Record{}, nil
		}
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// SaveRecords writes the full record collection, replacing the previous
// value wholesale.
func (s *Store) SaveRecords(_ context.Context, records []domain.Record) error {
	if err := s.set([]byte(recordsKey), records); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Debug("record collection persisted", "count", len(records))
	}
	return nil
}
