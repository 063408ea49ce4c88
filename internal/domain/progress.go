package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memory factor bounds. The factor scales future review intervals based on
// historical recall quality and never leaves this range.
const (
	MinMemoryFactor = 0.5
	MaxMemoryFactor = 1.5
)

// Badge is a one-time-awardable achievement unlocked when a named counter
// crosses a threshold. JSON tags define the persisted shape of the badges
// jsonb column.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Achievement is one entry of the append-only achievement log.
type Achievement struct {
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	XP          int             `json:"xp,omitempty"`
	BadgeID     string          `json:"badgeId,omitempty"`
}

// UserProgress is the progression aggregate for one user: level, experience,
// streak, memory factor, badges, and the achievement log.
//
// Invariants: Level ≥ 1 and monotonically non-decreasing; TotalXP monotonic
// non-decreasing; XP is the amount inside the current level; the badge set
// holds no duplicate ids; Achievements is append-only and never truncated
// by the engine.
type UserProgress struct {
	UserID           uuid.UUID
	DisplayName      string
	Level            int
	XP               int // xp within the current level
	TotalXP          int64
	StreakDays       int
	LongestStreak    int // high-water mark of StreakDays, survives resets
	LastActivityDate *time.Time
	MemoryFactor     float64
	CompletedReviews int // stabilization counter for the memory factor
	Badges           []Badge
	Achievements     []Achievement
	Stats            map[string]int // free-form counters used as badge predicates
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasBadge reports whether the badge id is already in the set.
func (p *UserProgress) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Stat returns a named counter, zero when absent.
func (p *UserProgress) Stat(name string) int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[name]
}

// XPResult is the outcome of an experience credit.
type XPResult struct {
	Level     int
	XPInLevel int
	TotalXP   int64
	LeveledUp bool
}

// StreakResult is the outcome of a streak evaluation.
type StreakResult struct {
	StreakDays int
	BonusXP    int
	Reset      bool
}
