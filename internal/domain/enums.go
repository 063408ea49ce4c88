package domain

// SlotStatus represents the lifecycle state of a review slot.
// The only legal transition is pending → completed.
type SlotStatus string

const (
	SlotStatusPending   SlotStatus = "pending"
	SlotStatusCompleted SlotStatus = "completed"
)

func (s SlotStatus) String() string { return string(s) }

func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotStatusPending, SlotStatusCompleted:
		return true
	}
	return false
}

// AchievementType identifies the kind of entry in the achievement log.
type AchievementType string

const (
	AchievementTypeXP      AchievementType = "xp"
	AchievementTypeLevelUp AchievementType = "levelup"
	AchievementTypeBadge   AchievementType = "badge"
)

func (t AchievementType) String() string { return string(t) }

// Stat names used as badge predicates in UserProgress.Stats.
// Free-form counters; these are the ones the engine itself maintains.
const (
	StatStudiesCreated   = "studiesCreated"
	StatReviewsCompleted = "reviewsCompleted"
)
