package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints that tags cannot express.
// It collects all problems instead of stopping at the first one.
func (c *Config) Validate() error {
	var problems []string

	if c.Database.DSN == "" {
		problems = append(problems, "database.dsn is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		problems = append(problems, fmt.Sprintf(
			"database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug|info|warn|error", c.Log.Level))
	}

	if c.Scheduling.UpcomingWindowDays <= 0 {
		problems = append(problems, "scheduling.upcoming_window_days must be positive")
	}
	if c.Scheduling.MaxIntervalsPerTemplate <= 0 {
		problems = append(problems, "scheduling.max_intervals_per_template must be positive")
	}

	if c.Progression.XPPerLevel <= 0 {
		problems = append(problems, "progression.xp_per_level must be positive")
	}
	if c.Progression.CreateItemXP <= 0 || c.Progression.CompleteReviewXP <= 0 {
		problems = append(problems, "progression xp rewards must be positive")
	}
	if c.Progression.BadgeBonusXP <= 0 {
		problems = append(problems, "progression.badge_bonus_xp must be positive")
	}
	if c.Progression.StreakBonusPerDay < 0 || c.Progression.StreakBonusCapDays < 0 {
		problems = append(problems, "progression streak bonus settings must not be negative")
	}

	if c.Leaderboard.TopN <= 0 {
		problems = append(problems, "leaderboard.top_n must be positive")
	}
	if c.Leaderboard.SnapshotTTL < 0 {
		problems = append(problems, "leaderboard.snapshot_ttl must not be negative")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
