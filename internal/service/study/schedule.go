package study

import (
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// BuildSchedule generates the review slots for a study item from template
// day-offsets: slot i is scheduled at anchor+offsets[i] days, pending, in
// index order. Pure function — no DB, no context, no logger.
// Returns domain.ErrInvalidInput (via ValidationError) when offsets is empty.
func BuildSchedule(offsets []int, anchor time.Time) ([]domain.ReviewSlot, error) {
	if len(offsets) == 0 {
		return nil, domain.NewValidationError("intervals", "template has no intervals")
	}

	anchor = DateOnly(anchor)
	slots := make([]domain.ReviewSlot, len(offsets))
	for i, offset := range offsets {
		slots[i] = domain.ReviewSlot{
			ReviewID:      uuid.NewString(),
			Status:        domain.SlotStatusPending,
			ScheduledDate: anchor.AddDate(0, 0, offset),
			Cycle:         i + 1,
			ReviewIndex:   i,
			Memo:          "",
		}
	}
	return slots, nil
}

// Reanchor rewrites the scheduled dates of every pending slot after
// completedIdx so the remainder of the plan follows the actual completion
// time instead of the original plan:
//
//	newDate = completionDate + (offsets[j] − offsets[completedIdx])
//
// Slots with no corresponding template offset keep their dates. Anchoring is
// always relative to the latest completion only — lateness does not compound
// across a chain of late completions.
// The slice is modified in place and returned for convenience.
func Reanchor(slots []domain.ReviewSlot, offsets []int, completedIdx int, completionDate time.Time) []domain.ReviewSlot {
	if completedIdx < 0 || completedIdx >= len(offsets) {
		return slots
	}

	completionDate = DateOnly(completionDate)
	for j := completedIdx + 1; j < len(slots); j++ {
		if slots[j].Status != domain.SlotStatusPending {
			continue
		}
		if j >= len(offsets) {
			break
		}
		daysAfter := offsets[j] - offsets[completedIdx]
		slots[j].ScheduledDate = completionDate.AddDate(0, 0, daysAfter)
	}
	return slots
}

// DateOnly truncates a timestamp to midnight UTC. All schedule arithmetic
// works on whole calendar days.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween returns the number of whole calendar days from one date
// to a later date. Negative when `to` precedes `from`.
func WholeDaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// Lateness returns the whole days a completion landed after its scheduled
// date, floored at zero.
func Lateness(scheduled, completed time.Time) int {
	d := WholeDaysBetween(scheduled, completed)
	if d < 0 {
		return 0
	}
	return d
}
