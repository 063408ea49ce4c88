package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a derived, read-only projection: one user's position
// when all users are ordered by total experience descending. Never persisted
// as a source of truth; recomputed (and possibly cached) on read.
type LeaderboardEntry struct {
	Rank        int // 1-based
	UserID      uuid.UUID
	DisplayName string
	Level       int
	TotalXP     int64
	UpdatedAt   time.Time
}

// UserRank is the result of a rank lookup for a single user. When the user
// falls outside the cached top-N snapshot the rank is approximate: it counts
// users with strictly greater total xp against a possibly stale snapshot and
// does not resolve ties.
type UserRank struct {
	Rank        int
	TotalUsers  int
	Approximate bool
}
