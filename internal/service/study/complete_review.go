package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

// CompleteReview marks one review slot as completed, records lateness, and
// re-anchors the remaining pending slots to the actual completion date. The
// item row is locked for the duration so concurrent completions on the same
// item serialize. Review XP, stats, streak, and the memory-factor update go
// through the progression tracker inside the same transaction.
func (s *Service) CompleteReview(ctx context.Context, in CompleteReviewInput) (*domain.StudyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	completedOn := in.CompletedOn
	if completedOn.IsZero() {
		completedOn = time.Now()
	}
	completedOn = DateOnly(completedOn)

	var updated *domain.StudyItem
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByIDForUpdate(ctx, userID, in.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if in.SlotIndex >= len(item.Reviews) {
			return domain.NewValidationError("slot_index", "no such review slot")
		}

		slot := &item.Reviews[in.SlotIndex]
		if slot.Status != domain.SlotStatusPending {
			return fmt.Errorf("slot %d already completed: %w", in.SlotIndex, domain.ErrInvalidState)
		}

		daysLate := Lateness(slot.ScheduledDate, completedOn)
		slot.Status = domain.SlotStatusCompleted
		slot.CompletedDate = &completedOn
		slot.IsLate = daysLate > 0
		slot.DaysLate = daysLate
		slot.MemoryRating = in.MemoryRating
		slot.DifficultyRating = in.DifficultyRating
		if in.Memo != nil {
			slot.Memo = *in.Memo
		}

		// Re-anchor the rest of the plan using the raw template offsets.
		// A deleted template is not an error: the slot completion stands,
		// the remaining dates just keep their current anchoring.
		tmpl, err := s.templates.GetByID(ctx, userID, item.TemplateID)
		switch {
		case err == nil:
			Reanchor(item.Reviews, tmpl.Intervals, in.SlotIndex, completedOn)
		case errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "template missing, skipping re-anchor",
				"user_id", userID, "item_id", item.ID, "template_id", item.TemplateID)
		default:
			return fmt.Errorf("get template: %w", err)
		}

		updated, err = s.items.UpdateSchedule(ctx, userID, item.ID, item.TemplateID, item.Reviews)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}

		if err := s.tracker.RecordReviewCompleted(ctx, userID, in.MemoryRating); err != nil {
			return fmt.Errorf("record review completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review completed",
		"user_id", userID, "item_id", in.ItemID, "slot_index", in.SlotIndex, "days_late", updated.Reviews[in.SlotIndex].DaysLate)
	return updated, nil
}
