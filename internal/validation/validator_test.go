package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/recordcandy/recordcandy-server/internal/errors"
	"github.com/recordcandy/recordcandy-server/internal/validation"
)

type createRecordRequest struct {
	WorkType      string   `json:"work_type" validate:"required,work_type"`
	Rating        int      `json:"rating" validate:"required,gte=1,lte=10"`
	OneLineReview string   `json:"one_line_review" validate:"max=200"`
	EmotionTags   []string `json:"emotion_tags" validate:"dive,emotion_tag"`
}

func validRequest() createRecordRequest {
	return createRecordRequest{
		WorkType:      "movie",
		Rating:        9,
		OneLineReview: "완벽한 영화",
		EmotionTags:   []string{"moved", "thrilled"},
	}
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(validRequest()))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		mutate    func(*createRecordRequest)
		wantField string
	}{
		{
			name:      "missing work type",
			mutate:    func(r *createRecordRequest) { r.WorkType = "" },
			wantField: "work_type",
		},
		{
			name:      "unknown work type",
			mutate:    func(r *createRecordRequest) { r.WorkType = "album" },
			wantField: "work_type",
		},
		{
			name:      "rating below range",
			mutate:    func(r *createRecordRequest) { r.Rating = 0 },
			wantField: "rating",
		},
		{
			name:      "rating above range",
			mutate:    func(r *createRecordRequest) { r.Rating = 11 },
			wantField: "rating",
		},
		{
			name:      "unknown emotion tag",
			mutate:    func(r *createRecordRequest) { r.EmotionTags = []string{"ecstatic"} },
			wantField: "emotion_tags[0]",
		},
		{
			name: "review too long",
			mutate: func(r *createRecordRequest) {
				r.OneLineReview = string(make([]byte, 201))
			},
			wantField: "one_line_review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(req)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
				details, ok := domainErr.Details.(map[string]string)
				if assert.True(t, ok, "details should carry the field error map") {
					assert.Contains(t, details, tt.wantField)
				}
			}
		})
	}
}

func TestValidator_RatingBoundsInclusive(t *testing.T) {
	v := validation.New()

	for _, rating := range []int{1, 10} {
		req := validRequest()
		req.Rating = rating
		assert.NoError(t, v.Validate(req), "rating %d should be accepted", rating)
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	req := validRequest()
	req.WorkType = ""

	err := v.Validate(req)
	assert.Error(t, err)

	// Should use JSON tag name "work_type", not struct field name "WorkType"
	var domainErr *domainerrors.Error
	if assert.True(t, errors.As(err, &domainErr)) {
		details, ok := domainErr.Details.(map[string]string)
		if assert.True(t, ok, "details should carry the field error map") {
			assert.Contains(t, details, "work_type")
			assert.NotContains(t, details, "WorkType")
		}
	}
}
