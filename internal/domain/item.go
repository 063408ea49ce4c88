package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSlot is one scheduled review occurrence within a StudyItem's
// schedule. JSON tags define the persisted shape of the reviews jsonb
// column and must stay stable for compatibility with existing rows.
type ReviewSlot struct {
	ReviewID         string     `json:"reviewId"`
	Status           SlotStatus `json:"status"`
	ScheduledDate    time.Time  `json:"scheduledDate"`
	Cycle            int        `json:"cycle"`       // 1-based, = ReviewIndex+1
	ReviewIndex      int        `json:"reviewIndex"` // position in the template
	MemoryRating     *int       `json:"memoryRating"`
	DifficultyRating *int       `json:"difficultyRating"`
	Memo             string     `json:"memo"`
	CompletedDate    *time.Time `json:"completedDate,omitempty"`
	IsLate           bool       `json:"isLate,omitempty"`
	DaysLate         int        `json:"daysLate,omitempty"`
}

// StudyItem is a user's registered piece of study material together with
// its generated review schedule. The item and its slots form one aggregate:
// slots are never mutated outside an item-level operation.
type StudyItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TemplateID  uuid.UUID
	Title       string
	Content     *string
	DateStudied time.Time
	Reviews     []ReviewSlot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PendingSlots returns the slots still awaiting completion, in index order.
func (i *StudyItem) PendingSlots() []ReviewSlot {
	var out []ReviewSlot
	for _, s := range i.Reviews {
		if s.Status == SlotStatusPending {
			out = append(out, s)
		}
	}
	return out
}

// ReviewStatistics holds aggregate counts over a user's review slots.
// Missed = pending slots whose scheduled date is already past.
type ReviewStatistics struct {
	TotalReviews     int
	CompletedReviews int
	PendingReviews   int
	MissedReviews    int
	CompletionRate   float64 // percent, rounded to one decimal
	TotalItems       int
}

// DueReviews groups the due slots of one item for today/upcoming views.
type DueReviews struct {
	Item  StudyItemRef
	Slots []ReviewSlot
}

// StudyItemRef is the lightweight item header carried in due-review views.
type StudyItemRef struct {
	ID      uuid.UUID
	Title   string
	Content *string
}
