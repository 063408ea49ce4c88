package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

// Create stores a new template. When IsDefault is set, any previous default
// of the user is cleared in the same transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.ReviewTemplate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.validate(s.cfg.MaxIntervalsPerTemplate); err != nil {
		return nil, err
	}

	tmpl := &domain.ReviewTemplate{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		IsDefault:   in.IsDefault,
		Intervals:   in.Intervals,
	}

	var created *domain.ReviewTemplate
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if in.IsDefault {
			if err := s.templates.ClearDefault(ctx, userID); err != nil {
				return fmt.Errorf("clear default: %w", err)
			}
		}
		var err error
		created, err = s.templates.Create(ctx, tmpl)
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "template created",
		"user_id", userID, "template_id", created.ID, "intervals", len(created.Intervals))
	return created, nil
}

// Get returns one of the user's templates.
func (s *Service) Get(ctx context.Context, templateID uuid.UUID) (*domain.ReviewTemplate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.templates.GetByID(ctx, userID, templateID)
}

// List returns all of the user's templates, default first.
func (s *Service) List(ctx context.Context) ([]*domain.ReviewTemplate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.templates.ListByUser(ctx, userID)
}

// Update applies the non-nil fields of the input. Changing the intervals
// does not touch existing item schedules; items follow the new offsets only
// at their next re-anchoring.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.ReviewTemplate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.validate(s.cfg.MaxIntervalsPerTemplate); err != nil {
		return nil, err
	}

	var updated *domain.ReviewTemplate
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tmpl, err := s.templates.GetByID(ctx, userID, in.TemplateID)
		if err != nil {
			return fmt.Errorf("get template: %w", err)
		}

		if in.Name != nil {
			tmpl.Name = *in.Name
		}
		if in.Description != nil {
			tmpl.Description = in.Description
		}
		if in.Intervals != nil {
			tmpl.Intervals = in.Intervals
		}
		if in.IsDefault != nil && *in.IsDefault != tmpl.IsDefault {
			if *in.IsDefault {
				if err := s.templates.ClearDefault(ctx, userID); err != nil {
					return fmt.Errorf("clear default: %w", err)
				}
			}
			tmpl.IsDefault = *in.IsDefault
		}

		updated, err = s.templates.Update(ctx, tmpl)
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "template updated", "user_id", userID, "template_id", in.TemplateID)
	return updated, nil
}

// Delete removes a template. The default template cannot be deleted while it
// is the default; mark another one first. Items keep their generated
// schedules and simply skip re-anchoring once the template is gone.
func (s *Service) Delete(ctx context.Context, templateID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	tmpl, err := s.templates.GetByID(ctx, userID, templateID)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}
	if tmpl.IsDefault {
		return fmt.Errorf("template is the user default: %w", domain.ErrInvalidState)
	}

	if err := s.templates.Delete(ctx, userID, templateID); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	s.log.InfoContext(ctx, "template deleted", "user_id", userID, "template_id", templateID)
	return nil
}

// EnsureDefault returns the user's default template, creating the standard
// one on first use. Idempotent.
func (s *Service) EnsureDefault(ctx context.Context) (*domain.ReviewTemplate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tmpl, err := s.templates.GetDefault(ctx, userID)
	if err == nil {
		return tmpl, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get default template: %w", err)
	}

	created, err := s.templates.Create(ctx, &domain.ReviewTemplate{
		UserID:    userID,
		Name:      "Standard",
		IsDefault: true,
		Intervals: domain.DefaultIntervals,
	})
	if err != nil {
		// A concurrent bootstrap may have won the race.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.templates.GetDefault(ctx, userID)
		}
		return nil, fmt.Errorf("create default template: %w", err)
	}

	s.log.InfoContext(ctx, "default template bootstrapped", "user_id", userID, "template_id", created.ID)
	return created, nil
}
