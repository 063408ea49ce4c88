package study

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

// GetItem returns one of the user's study items.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.StudyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.items.GetByID(ctx, userID, itemID)
}

// ListItems returns all of the user's study items, newest first.
func (s *Service) ListItems(ctx context.Context) ([]*domain.StudyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.items.ListByUser(ctx, userID)
}

// DeleteItem removes a study item and its schedule.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.items.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.log.InfoContext(ctx, "study item deleted", "user_id", userID, "item_id", itemID)
	return nil
}

// TodayReviews returns the pending slots scheduled on or before today,
// grouped per item. Overdue slots count as due today.
func (s *Service) TodayReviews(ctx context.Context) ([]domain.DueReviews, error) {
	today := DateOnly(time.Now())
	return s.dueReviews(ctx, func(scheduled time.Time) bool {
		return !DateOnly(scheduled).After(today)
	})
}

// UpcomingReviews returns the pending slots due within (today, today+N]
// days, grouped per item. daysAhead ≤ 0 falls back to the configured window.
func (s *Service) UpcomingReviews(ctx context.Context, daysAhead int) ([]domain.DueReviews, error) {
	if daysAhead <= 0 {
		daysAhead = s.cfg.UpcomingWindowDays
	}
	today := DateOnly(time.Now())
	horizon := today.AddDate(0, 0, daysAhead)
	return s.dueReviews(ctx, func(scheduled time.Time) bool {
		d := DateOnly(scheduled)
		return d.After(today) && !d.After(horizon)
	})
}

func (s *Service) dueReviews(ctx context.Context, match func(time.Time) bool) ([]domain.DueReviews, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	var out []domain.DueReviews
	for _, item := range items {
		var due []domain.ReviewSlot
		for _, slot := range item.Reviews {
			if slot.Status == domain.SlotStatusPending && match(slot.ScheduledDate) {
				due = append(due, slot)
			}
		}
		if len(due) > 0 {
			out = append(out, domain.DueReviews{
				Item:  domain.StudyItemRef{ID: item.ID, Title: item.Title, Content: item.Content},
				Slots: due,
			})
		}
	}
	return out, nil
}

// Statistics aggregates review counts over all of the user's items. A
// pending slot whose scheduled date is already past counts as missed; the
// completion rate measures completed against everything that has come due.
func (s *Service) Statistics(ctx context.Context) (*domain.ReviewStatistics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	today := DateOnly(time.Now())
	stats := domain.ReviewStatistics{TotalItems: len(items)}
	for _, item := range items {
		for _, slot := range item.Reviews {
			stats.TotalReviews++
			switch {
			case slot.Status == domain.SlotStatusCompleted:
				stats.CompletedReviews++
			case DateOnly(slot.ScheduledDate).Before(today):
				stats.MissedReviews++
			default:
				stats.PendingReviews++
			}
		}
	}

	if due := stats.CompletedReviews + stats.MissedReviews; due > 0 {
		rate := float64(stats.CompletedReviews) / float64(due) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}
	return &stats, nil
}
