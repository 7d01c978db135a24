// Package service contains the business services of the record journal: the
// record lifecycle manager and the dual-provider search coordinator.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/recordcandy/recordcandy-server/internal/domain"
	domainerrors "github.com/recordcandy/recordcandy-server/internal/errors"
)

// RecordStore is the persistence boundary for the record collection.
type RecordStore interface {
	LoadRecords(ctx context.Context) ([]domain.Record, error)
	SaveRecords(ctx context.Context, records []domain.Record) error
}

// CreateRecordInput carries everything needed to create a record except the
// system-assigned timestamps. The id must be pre-generated by the caller;
// the service performs no uniqueness check, so duplicate ids silently
// coexist.
type CreateRecordInput struct {
	ID            string
	WorkType      domain.WorkType
	Work          domain.Work
	Rating        int
	ReviewDate    time.Time
	OneLineReview string
	EmotionTags   []domain.EmotionTag
	RewatchIntent bool
}

// RecordPatch is a partial update. Nil fields keep their current value; a
// non-nil EmotionTags replaces the whole list (an empty non-nil slice clears
// it). The work snapshot and work type are never patched - a record keeps
// the catalog data it was created with.
type RecordPatch struct {
	Rating        *int
	ReviewDate    *time.Time
	OneLineReview *string
	EmotionTags   []domain.EmotionTag
	RewatchIntent *bool
}

// RecordService owns the authoritative in-memory record collection, backed
// by an injected persistence boundary. Every mutation builds a replacement
// collection, writes it back, and only then swaps it in, so a failed write
// never leaves memory and disk disagreeing.
type RecordService struct {
	mu      sync.Mutex
	records []domain.Record
	store   RecordStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewRecordService creates the service and loads the persisted collection.
// A nil logger discards log output.
func NewRecordService(ctx context.Context, store RecordStore, logger *slog.Logger) (*RecordService, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	records, err := store.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	logger.Info("record collection loaded", "count", len(records))

	return &RecordService{
		records: records,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Add appends a new record to the collection and sets both timestamps to the
// current instant.
func (s *RecordService) Add(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := domain.Record{
		ID:            input.ID,
		WorkType:      input.WorkType,
		Work:          input.Work,
		Rating:        input.Rating,
		ReviewDate:    input.ReviewDate,
		OneLineReview: input.OneLineReview,
		EmotionTags:   slices.Clone(input.EmotionTags),
		RewatchIntent: input.RewatchIntent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if record.EmotionTags == nil {
		record.EmotionTags = []domain.EmotionTag{}
	}

	next := make([]domain.Record, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, record)

	if err := s.store.SaveRecords(ctx, next); err != nil {
		return nil, fmt.Errorf("persist records: %w", err)
	}
	s.records = next

	s.logger.Info("record added",
		"record_id", record.ID,
		"work_type", record.WorkType,
		"title", record.Work.Title,
	)

	return &record, nil
}

// Update merges the patch over the record with the given id and refreshes
// UpdatedAt, leaving CreatedAt untouched. A missing id is a silent no-op:
// no error, collection unchanged. Returns the updated record, or nil when
// nothing matched.
func (s *RecordService) Update(ctx context.Context, recordID string, patch RecordPatch) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		s.logger.Warn("update of unknown record ignored", "record_id", recordID)
		return nil, nil
	}

	updated := s.records[idx].Clone()
	if patch.Rating != nil {
		updated.Rating = *patch.Rating
	}
	if patch.ReviewDate != nil {
		updated.ReviewDate = *patch.ReviewDate
	}
	if patch.OneLineReview != nil {
		updated.OneLineReview = *patch.OneLineReview
	}
	if patch.EmotionTags != nil {
		updated.EmotionTags = slices.Clone(patch.EmotionTags)
	}
	if patch.RewatchIntent != nil {
		updated.RewatchIntent = *patch.RewatchIntent
	}
	updated.UpdatedAt = s.now()

	next := slices.Clone(s.records)
	next[idx] = updated

	if err := s.store.SaveRecords(ctx, next); err != nil {
		return nil, fmt.Errorf("persist records: %w", err)
	}
	s.records = next

	s.logger.Info("record updated", "record_id", recordID)

	return &updated, nil
}

// Delete removes the record with the given id. A missing id is a silent
// no-op.
func (s *RecordService) Delete(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		s.logger.Warn("delete of unknown record ignored", "record_id", recordID)
		return nil
	}

	next := slices.Concat(s.records[:idx], s.records[idx+1:])

	if err := s.store.SaveRecords(ctx, next); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	s.records = next

	s.logger.Info("record deleted", "record_id", recordID)

	return nil
}

// GetByID returns the first record with the given id, or a coded not-found
// error. Unlike update and delete, lookups do report missing ids.
func (s *RecordService) GetByID(_ context.Context, recordID string) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(recordID)
	if idx < 0 {
		return nil, domainerrors.NotFoundf("record %s not found", recordID)
	}

	record := s.records[idx].Clone()
	return &record, nil
}

// GetAll returns a copy of the full collection in insertion order. Callers
// compose domain.FilterRecords and domain.SortRecords downstream; this layer
// does not filter.
func (s *RecordService) GetAll(_ context.Context) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Record, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out
}

// indexOf returns the position of the first record with the given id, or -1.
// Callers must hold the mutex.
func (s *RecordService) indexOf(recordID string) int {
	return slices.IndexFunc(s.records, func(r domain.Record) bool {
		return r.ID == recordID
	})
}
