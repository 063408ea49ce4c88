package study

import (
	"context"
	"fmt"
	"time"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

// SwitchTemplate regenerates an item's entire schedule from another
// template. The regeneration is destructive: previous completion history on
// the item is discarded and a fresh pending schedule is built from the
// anchor date.
func (s *Service) SwitchTemplate(ctx context.Context, in SwitchTemplateInput) (*domain.StudyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	anchor := in.AnchorDate
	if anchor.IsZero() {
		anchor = time.Now()
	}

	var updated *domain.StudyItem
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByIDForUpdate(ctx, userID, in.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		tmpl, err := s.templates.GetByID(ctx, userID, in.TemplateID)
		if err != nil {
			return fmt.Errorf("get template: %w", err)
		}
		if len(tmpl.Intervals) > s.cfg.MaxIntervalsPerTemplate {
			return domain.NewValidationError("template_id", "template has too many intervals")
		}

		reviews, err := BuildSchedule(tmpl.Intervals, anchor)
		if err != nil {
			return err
		}

		updated, err = s.items.UpdateSchedule(ctx, userID, item.ID, tmpl.ID, reviews)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item template switched",
		"user_id", userID, "item_id", in.ItemID, "template_id", in.TemplateID)
	return updated, nil
}
