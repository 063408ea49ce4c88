package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Scheduling  SchedulingConfig  `yaml:"scheduling"`
	Progression ProgressionConfig `yaml:"progression"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SchedulingConfig holds review-scheduler settings.
type SchedulingConfig struct {
	// UpcomingWindowDays is the default lookahead for the upcoming-reviews
	// view when the caller does not pass one.
	UpcomingWindowDays int `yaml:"upcoming_window_days" env:"SCHED_UPCOMING_WINDOW_DAYS" env-default:"7"`
	// MaxIntervalsPerTemplate caps template length; a runaway template
	// would otherwise generate an unbounded schedule per item.
	MaxIntervalsPerTemplate int `yaml:"max_intervals_per_template" env:"SCHED_MAX_INTERVALS" env-default:"30"`
}

// ProgressionConfig holds experience, streak, and badge reward settings.
// The level threshold is the linear model: threshold(level) = XPPerLevel*level.
type ProgressionConfig struct {
	XPPerLevel       int `yaml:"xp_per_level"       env:"PROG_XP_PER_LEVEL"       env-default:"100"`
	CreateItemXP     int `yaml:"create_item_xp"     env:"PROG_CREATE_ITEM_XP"     env-default:"10"`
	CompleteReviewXP int `yaml:"complete_review_xp" env:"PROG_COMPLETE_REVIEW_XP" env-default:"5"`
	BadgeBonusXP     int `yaml:"badge_bonus_xp"     env:"PROG_BADGE_BONUS_XP"     env-default:"15"`

	// Daily streak bonus = min(StreakBonusCapDays, streak) * StreakBonusPerDay,
	// plus a one-time milestone bonus when the streak lands exactly on 7 or 30.
	StreakBonusPerDay   int `yaml:"streak_bonus_per_day"   env:"PROG_STREAK_BONUS_PER_DAY"   env-default:"5"`
	StreakBonusCapDays  int `yaml:"streak_bonus_cap_days"  env:"PROG_STREAK_BONUS_CAP_DAYS"  env-default:"5"`
	StreakMilestone7XP  int `yaml:"streak_milestone_7_xp"  env:"PROG_STREAK_MILESTONE_7_XP"  env-default:"30"`
	StreakMilestone30XP int `yaml:"streak_milestone_30_xp" env:"PROG_STREAK_MILESTONE_30_XP" env-default:"100"`
}

// LeaderboardConfig holds leaderboard snapshot settings.
type LeaderboardConfig struct {
	TopN        int           `yaml:"top_n"        env:"LEADERBOARD_TOP_N"        env-default:"100"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl" env:"LEADERBOARD_SNAPSHOT_TTL" env-default:"30s"`
}
