// Package progress implements the user-progress repository using PostgreSQL.
// Badges, achievements, and free-form stat counters are stored as jsonb.
package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/studytrack/studytrack-backend/internal/adapter/postgres"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Repo provides user-progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user-progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const progressColumns = `user_id, display_name, level, xp, total_xp, streak_days, longest_streak,
	last_activity_date, memory_factor, completed_reviews, badges, achievements, stats,
	created_at, updated_at`

const getByUserIDSQL = `
SELECT ` + progressColumns + `
FROM user_progress
WHERE user_id = $1`

// FOR UPDATE serializes concurrent credits against the same user's row.
const getByUserIDForUpdateSQL = getByUserIDSQL + `
FOR UPDATE`

const createSQL = `
INSERT INTO user_progress (user_id, display_name, level, xp, total_xp, streak_days, longest_streak,
	last_activity_date, memory_factor, completed_reviews, badges, achievements, stats)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + progressColumns

const updateSQL = `
UPDATE user_progress
SET display_name = $2, level = $3, xp = $4, total_xp = $5, streak_days = $6, longest_streak = $7,
	last_activity_date = $8, memory_factor = $9, completed_reviews = $10, badges = $11,
	achievements = $12, stats = $13, updated_at = now()
WHERE user_id = $1
RETURNING ` + progressColumns

// GetByUserID returns the progress row for a user.
// Returns domain.ErrNotFound when no row exists yet.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "progress", userID)
	}
	return p, nil
}

// GetByUserIDForUpdate is GetByUserID with a row lock. Must run inside a
// transaction.
func (r *Repo) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(q.QueryRow(ctx, getByUserIDForUpdateSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "progress", userID)
	}
	return p, nil
}

// Create inserts a fresh progress row and returns the stored state.
// Returns domain.ErrAlreadyExists when a row for the user is already present.
func (r *Repo) Create(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	badges, achievements, stats, err := marshalJSONColumns(p)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, createSQL,
		p.UserID, p.DisplayName, p.Level, p.XP, p.TotalXP, p.StreakDays, p.LongestStreak,
		p.LastActivityDate, p.MemoryFactor, p.CompletedReviews, badges, achievements, stats)

	created, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "progress", p.UserID)
	}
	return created, nil
}

// Update rewrites the full progress state and returns the stored row.
// Returns domain.ErrNotFound when no row exists for the user.
func (r *Repo) Update(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	badges, achievements, stats, err := marshalJSONColumns(p)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, updateSQL,
		p.UserID, p.DisplayName, p.Level, p.XP, p.TotalXP, p.StreakDays, p.LongestStreak,
		p.LastActivityDate, p.MemoryFactor, p.CompletedReviews, badges, achievements, stats)

	updated, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "progress", p.UserID)
	}
	return updated, nil
}

func marshalJSONColumns(p *domain.UserProgress) (badges, achievements, stats []byte, err error) {
	// Persist '[]'/'{}' rather than 'null' so reads never see a nil column.
	b := p.Badges
	if b == nil {
		b = []domain.Badge{}
	}
	a := p.Achievements
	if a == nil {
		a = []domain.Achievement{}
	}
	s := p.Stats
	if s == nil {
		s = map[string]int{}
	}

	if badges, err = json.Marshal(b); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal badges: %w", err)
	}
	if achievements, err = json.Marshal(a); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal achievements: %w", err)
	}
	if stats, err = json.Marshal(s); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal stats: %w", err)
	}
	return badges, achievements, stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (*domain.UserProgress, error) {
	var (
		p            domain.UserProgress
		badges       []byte
		achievements []byte
		stats        []byte
	)
	err := row.Scan(
		&p.UserID, &p.DisplayName, &p.Level, &p.XP, &p.TotalXP, &p.StreakDays, &p.LongestStreak,
		&p.LastActivityDate, &p.MemoryFactor, &p.CompletedReviews, &badges, &achievements, &stats,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(badges, &p.Badges); err != nil {
		return nil, fmt.Errorf("unmarshal badges: %w", err)
	}
	if err := json.Unmarshal(achievements, &p.Achievements); err != nil {
		return nil, fmt.Errorf("unmarshal achievements: %w", err)
	}
	if err := json.Unmarshal(stats, &p.Stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	return &p, nil
}
