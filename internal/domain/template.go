package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewTemplate is a named ordered list of day-offsets defining a review
// cadence, e.g. [0, 1, 7, 30]. Scheduling logic indexes offsets
// positionally, not by value; they need not increase.
type ReviewTemplate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	IsDefault   bool
	Intervals   []int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultIntervals is the Ebbinghaus-curve cadence used when a user has no
// template of their own: same day, next day, one week, one month.
var DefaultIntervals = []int{0, 1, 7, 30}
