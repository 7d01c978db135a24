package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/recordcandy/recordcandy-server/internal/domain"
	domainerrors "github.com/recordcandy/recordcandy-server/internal/errors"
	"github.com/recordcandy/recordcandy-server/internal/id"
	"github.com/recordcandy/recordcandy-server/internal/service"
)

func (s *Server) registerRecordRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listRecords",
		Method:      http.MethodGet,
		Path:        "/api/v1/records",
		Summary:     "List records",
		Description: "Returns records, optionally filtered and sorted",
		Tags:        []string{"Records"},
	}, s.handleListRecords)

	huma.Register(s.api, huma.Operation{
		OperationID: "createRecord",
		Method:      http.MethodPost,
		Path:        "/api/v1/records",
		Summary:     "Create record",
		Description: "Creates a new record for a watched movie or read book",
		Tags:        []string{"Records"},
	}, s.handleCreateRecord)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecord",
		Method:      http.MethodGet,
		Path:        "/api/v1/records/{id}",
		Summary:     "Get record",
		Description: "Returns a record by ID",
		Tags:        []string{"Records"},
	}, s.handleGetRecord)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateRecord",
		Method:      http.MethodPatch,
		Path:        "/api/v1/records/{id}",
		Summary:     "Update record",
		Description: "Updates the review fields of a record. The work snapshot is immutable.",
		Tags:        []string{"Records"},
	}, s.handleUpdateRecord)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteRecord",
		Method:        http.MethodDelete,
		Path:          "/api/v1/records/{id}",
		Summary:       "Delete record",
		Description:   "Deletes a record. Deleting an absent record succeeds.",
		Tags:          []string{"Records"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteRecord)
}

// === DTOs ===

// WorkResponse contains the work snapshot in API responses.
type WorkResponse struct {
	ID        string   `json:"id" doc:"Provider-side work ID"`
	Title     string   `json:"title" doc:"Work title"`
	Year      int      `json:"year" doc:"Release or publication year, 0 when unknown"`
	PosterURL string   `json:"poster_url,omitempty" doc:"Poster image URL (movies)"`
	Director  string   `json:"director,omitempty" doc:"Director name (movies)"`
	CoverURL  string   `json:"cover_url,omitempty" doc:"Cover image URL (books)"`
	Author    string   `json:"author,omitempty" doc:"Author name (books)"`
	Genres    []string `json:"genres,omitempty" doc:"Genre names"`
}

// RecordResponse contains record data in API responses.
type RecordResponse struct {
	ID            string       `json:"id" doc:"Record ID"`
	WorkType      string       `json:"work_type" doc:"movie or book"`
	Work          WorkResponse `json:"work" doc:"Snapshot of the work at record time"`
	Rating        int          `json:"rating" doc:"Rating from 1 to 10"`
	ReviewDate    time.Time    `json:"review_date" doc:"When the work was watched or read"`
	OneLineReview string       `json:"one_line_review" doc:"Short review text"`
	EmotionTags   []string     `json:"emotion_tags" doc:"Emotion tags"`
	RewatchIntent bool         `json:"rewatch_intent" doc:"Whether a rewatch or reread is intended"`
	CreatedAt     time.Time    `json:"created_at" doc:"Creation time"`
	UpdatedAt     time.Time    `json:"updated_at" doc:"Last update time"`
}

// ListRecordsInput contains filter and sort parameters for listing records.
type ListRecordsInput struct {
	WorkType    string   `query:"work_type" doc:"Filter by work type (movie or book)"`
	RatingMin   int      `query:"rating_min" doc:"Minimum rating, inclusive"`
	RatingMax   int      `query:"rating_max" doc:"Maximum rating, inclusive"`
	Year        int      `query:"year" doc:"Filter by work year"`
	EmotionTags []string `query:"emotion_tags" doc:"Records must carry at least one of these tags"`
	Sort        string   `query:"sort" doc:"Sort order: newest, oldest, rating-high, rating-low"`
}

// ListRecordsResponse contains a list of records.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records" doc:"List of records"`
	Total   int              `json:"total" doc:"Number of records after filtering"`
}

// ListRecordsOutput wraps the list records response for Huma.
type ListRecordsOutput struct {
	Body ListRecordsResponse
}

// CreateWorkRequest is the work snapshot in a create request.
type CreateWorkRequest struct {
	ID        string   `json:"id" validate:"required" doc:"Provider-side work ID"`
	Title     string   `json:"title" validate:"required" doc:"Work title"`
	Year      int      `json:"year,omitempty" validate:"gte=0" doc:"Release or publication year, 0 when unknown"`
	PosterURL string   `json:"poster_url,omitempty" doc:"Poster image URL (movies)"`
	Director  string   `json:"director,omitempty" doc:"Director name (movies)"`
	CoverURL  string   `json:"cover_url,omitempty" doc:"Cover image URL (books)"`
	Author    string   `json:"author,omitempty" doc:"Author name (books)"`
	Genres    []string `json:"genres,omitempty" doc:"Genre names"`
}

// CreateRecordRequest is the request body for creating a record.
type CreateRecordRequest struct {
	WorkType      string            `json:"work_type" validate:"required,work_type" doc:"movie or book"`
	Work          CreateWorkRequest `json:"work" validate:"required" doc:"Snapshot of the work"`
	Rating        int               `json:"rating" validate:"required,gte=1,lte=10" doc:"Rating from 1 to 10"`
	ReviewDate    time.Time         `json:"review_date,omitempty" doc:"When the work was watched or read, defaults to now"`
	OneLineReview string            `json:"one_line_review,omitempty" validate:"max=200" doc:"Short review text"`
	EmotionTags   []string          `json:"emotion_tags,omitempty" validate:"dive,emotion_tag" doc:"Emotion tags"`
	RewatchIntent bool              `json:"rewatch_intent,omitempty" doc:"Whether a rewatch or reread is intended"`
}

// CreateRecordInput wraps the create record request for Huma.
type CreateRecordInput struct {
	Body CreateRecordRequest
}

// RecordOutput wraps a single record response for Huma.
type RecordOutput struct {
	Body RecordResponse
}

// GetRecordInput contains parameters for getting a record.
type GetRecordInput struct {
	ID string `path:"id" doc:"Record ID"`
}

// UpdateRecordRequest is the request body for updating a record. Absent
// fields keep their current values.
type UpdateRecordRequest struct {
	Rating        *int       `json:"rating,omitempty" validate:"omitempty,gte=1,lte=10" doc:"Rating from 1 to 10"`
	ReviewDate    *time.Time `json:"review_date,omitempty" doc:"When the work was watched or read"`
	OneLineReview *string    `json:"one_line_review,omitempty" validate:"omitempty,max=200" doc:"Short review text"`
	EmotionTags   []string   `json:"emotion_tags,omitempty" validate:"omitempty,dive,emotion_tag" doc:"Replacement emotion tags"`
	RewatchIntent *bool      `json:"rewatch_intent,omitempty" doc:"Whether a rewatch or reread is intended"`
}

// UpdateRecordInput wraps the update record request for Huma.
type UpdateRecordInput struct {
	ID   string `path:"id" doc:"Record ID"`
	Body UpdateRecordRequest
}

// UpdateRecordResponse reports the outcome of an update.
type UpdateRecordResponse struct {
	Updated bool            `json:"updated" doc:"False when no record with the given ID exists"`
	Record  *RecordResponse `json:"record,omitempty" doc:"The updated record"`
}

// UpdateRecordOutput wraps the update record response for Huma.
type UpdateRecordOutput struct {
	Body UpdateRecordResponse
}

// DeleteRecordInput contains parameters for deleting a record.
type DeleteRecordInput struct {
	ID string `path:"id" doc:"Record ID"`
}

// DeleteRecordOutput is the empty response for a delete.
type DeleteRecordOutput struct{}

// === Handlers ===

func (s *Server) handleListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	filter, sortOption, err := s.buildQuery(input)
	if err != nil {
		return nil, err
	}

	records := s.records.GetAll(ctx)
	records = domain.FilterRecords(records, filter)
	records = domain.SortRecords(records, sortOption)

	resp := make([]RecordResponse, len(records))
	for i, r := range records {
		resp[i] = toRecordResponse(r)
	}

	return &ListRecordsOutput{Body: ListRecordsResponse{Records: resp, Total: len(resp)}}, nil
}

func (s *Server) handleCreateRecord(ctx context.Context, input *CreateRecordInput) (*RecordOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	recordID, err := id.NewRecordID()
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate record ID")
	}

	reviewDate := input.Body.ReviewDate
	if reviewDate.IsZero() {
		reviewDate = time.Now()
	}

	record, err := s.records.Add(ctx, service.CreateRecordInput{
		ID:            recordID,
		WorkType:      domain.WorkType(input.Body.WorkType),
		Work:          toDomainWork(input.Body.Work),
		Rating:        input.Body.Rating,
		ReviewDate:    reviewDate,
		OneLineReview: input.Body.OneLineReview,
		EmotionTags:   toEmotionTags(input.Body.EmotionTags),
		RewatchIntent: input.Body.RewatchIntent,
	})
	if err != nil {
		return nil, err
	}

	return &RecordOutput{Body: toRecordResponse(*record)}, nil
}

func (s *Server) handleGetRecord(ctx context.Context, input *GetRecordInput) (*RecordOutput, error) {
	record, err := s.records.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &RecordOutput{Body: toRecordResponse(*record)}, nil
}

func (s *Server) handleUpdateRecord(ctx context.Context, input *UpdateRecordInput) (*UpdateRecordOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	patch := service.RecordPatch{
		Rating:        input.Body.Rating,
		ReviewDate:    input.Body.ReviewDate,
		OneLineReview: input.Body.OneLineReview,
		RewatchIntent: input.Body.RewatchIntent,
	}
	if input.Body.EmotionTags != nil {
		patch.EmotionTags = toEmotionTags(input.Body.EmotionTags)
	}

	record, err := s.records.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, err
	}
	// Updating an absent record is not an error, just a no-op.
	if record == nil {
		return &UpdateRecordOutput{Body: UpdateRecordResponse{Updated: false}}, nil
	}

	resp := toRecordResponse(*record)
	return &UpdateRecordOutput{Body: UpdateRecordResponse{Updated: true, Record: &resp}}, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	if err := s.records.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteRecordOutput{}, nil
}

// === Helpers ===

// buildQuery translates list parameters into a domain filter and sort option.
func (s *Server) buildQuery(input *ListRecordsInput) (domain.RecordFilter, domain.SortOption, error) {
	var filter domain.RecordFilter

	if input.WorkType != "" {
		wt := domain.WorkType(input.WorkType)
		if !wt.Valid() {
			return filter, "", domainerrors.Validationf("unknown work type %q", input.WorkType)
		}
		filter.WorkType = &wt
	}
	if input.RatingMin != 0 {
		v := input.RatingMin
		filter.RatingMin = &v
	}
	if input.RatingMax != 0 {
		v := input.RatingMax
		filter.RatingMax = &v
	}
	if input.Year != 0 {
		v := input.Year
		filter.Year = &v
	}
	for _, tag := range input.EmotionTags {
		et := domain.EmotionTag(tag)
		if !et.Valid() {
			return filter, "", domainerrors.Validationf("unknown emotion tag %q", tag)
		}
		filter.EmotionTags = append(filter.EmotionTags, et)
	}

	sortOption := domain.SortNewest
	if input.Sort != "" {
		sortOption = domain.SortOption(input.Sort)
		if !sortOption.Valid() {
			return filter, "", domainerrors.Validationf("unknown sort option %q", input.Sort)
		}
	}

	return filter, sortOption, nil
}

func toDomainWork(w CreateWorkRequest) domain.Work {
	return domain.Work{
		ID:        w.ID,
		Title:     w.Title,
		Year:      w.Year,
		PosterURL: w.PosterURL,
		Director:  w.Director,
		CoverURL:  w.CoverURL,
		Author:    w.Author,
		Genres:    w.Genres,
	}
}

func toEmotionTags(tags []string) []domain.EmotionTag {
	out := make([]domain.EmotionTag, len(tags))
	for i, t := range tags {
		out[i] = domain.EmotionTag(t)
	}
	return out
}

func toRecordResponse(r domain.Record) RecordResponse {
	tags := make([]string, len(r.EmotionTags))
	for i, t := range r.EmotionTags {
		tags[i] = string(t)
	}

	return RecordResponse{
		ID:       r.ID,
		WorkType: string(r.WorkType),
		Work: WorkResponse{
			ID:        r.Work.ID,
			Title:     r.Work.Title,
			Year:      r.Work.Year,
			PosterURL: r.Work.PosterURL,
			Director:  r.Work.Director,
			CoverURL:  r.Work.CoverURL,
			Author:    r.Work.Author,
			Genres:    r.Work.Genres,
		},
		Rating:        r.Rating,
		ReviewDate:    r.ReviewDate,
		OneLineReview: r.OneLineReview,
		EmotionTags:   tags,
		RewatchIntent: r.RewatchIntent,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
