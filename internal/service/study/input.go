package study

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/internal/service/memoryfactor"
)

const maxTitleLen = 200

// CreateItemInput holds the data for registering a study item.
type CreateItemInput struct {
	Title      string
	Content    *string
	TemplateID *uuid.UUID // nil → user's default template
	StudiedOn  time.Time  // zero → today

	// Personalize passes every non-zero template offset through the
	// memory-factor estimator with the ratings below.
	Personalize bool
	Difficulty  int // 1–5, clamped; only read when Personalize is set
	Importance  int // 1–5, clamped; only read when Personalize is set
}

// Validate checks the input before any state is touched.
func (in CreateItemInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
	}
	if len(in.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if in.TemplateID != nil && *in.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "must not be the nil UUID"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteReviewInput holds the data for completing one review slot.
type CompleteReviewInput struct {
	ItemID           uuid.UUID
	SlotIndex        int
	CompletedOn      time.Time // zero → today
	MemoryRating     *int      // 1–5 recall quality
	DifficultyRating *int      // 1–5
	Memo             *string
}

// Validate rejects out-of-range ratings before any state mutation.
func (in CompleteReviewInput) Validate() error {
	var errs []domain.FieldError
	if in.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "is required"})
	}
	if in.SlotIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "slot_index", Message: "must not be negative"})
	}
	if in.MemoryRating != nil && (*in.MemoryRating < memoryfactor.MinRating || *in.MemoryRating > memoryfactor.MaxRating) {
		errs = append(errs, domain.FieldError{Field: "memory_rating", Message: "must be between 1 and 5"})
	}
	if in.DifficultyRating != nil && (*in.DifficultyRating < memoryfactor.MinRating || *in.DifficultyRating > memoryfactor.MaxRating) {
		errs = append(errs, domain.FieldError{Field: "difficulty_rating", Message: "must be between 1 and 5"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SwitchTemplateInput holds the data for regenerating an item's schedule
// from a different template.
type SwitchTemplateInput struct {
	ItemID     uuid.UUID
	TemplateID uuid.UUID
	AnchorDate time.Time // zero → today
}

func (in SwitchTemplateInput) Validate() error {
	var errs []domain.FieldError
	if in.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "is required"})
	}
	if in.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
