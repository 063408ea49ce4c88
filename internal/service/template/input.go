package template

import (
	"strings"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

const maxNameLen = 100

// CreateInput holds the data for creating a review template.
type CreateInput struct {
	Name        string
	Description *string
	Intervals   []int // day offsets from the study date, indexed positionally
	IsDefault   bool
}

// UpdateInput holds the data for updating a template. Nil fields are left
// unchanged; a nil Intervals keeps the existing offsets.
type UpdateInput struct {
	TemplateID  uuid.UUID
	Name        *string
	Description *string
	Intervals   []int
	IsDefault   *bool
}

func validateIntervals(intervals []int, maxLen int) []domain.FieldError {
	var errs []domain.FieldError
	if len(intervals) == 0 {
		errs = append(errs, domain.FieldError{Field: "intervals", Message: "must not be empty"})
		return errs
	}
	if len(intervals) > maxLen {
		errs = append(errs, domain.FieldError{Field: "intervals", Message: "too many intervals"})
	}
	// Offsets are indexed by position, not by value, so any non-negative
	// ordering is accepted.
	for _, v := range intervals {
		if v < 0 {
			errs = append(errs, domain.FieldError{Field: "intervals", Message: "offsets must not be negative"})
			break
		}
	}
	return errs
}

func (in CreateInput) validate(maxIntervals int) error {
	var errs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if len(in.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	errs = append(errs, validateIntervals(in.Intervals, maxIntervals)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (in UpdateInput) validate(maxIntervals int) error {
	var errs []domain.FieldError
	if in.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "is required"})
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
		if len(*in.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if in.Intervals != nil {
		errs = append(errs, validateIntervals(in.Intervals, maxIntervals)...)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
