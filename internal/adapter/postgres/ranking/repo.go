// Package ranking implements the rankings projection repository using
// PostgreSQL. The table is a denormalized copy of the progression fields the
// leaderboard orders by, kept current by the progression service on every
// write.
package ranking

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/studytrack/studytrack-backend/internal/adapter/postgres"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Repo provides rankings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// New creates a new rankings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const rankingColumns = `user_id, display_name, level, total_xp, updated_at`

// boardOrder matches idx_rankings_board; updated_at breaks xp ties in favor
// of whoever reached the score first, user_id keeps the order total.
const boardOrder = `total_xp DESC, updated_at ASC, user_id ASC`

const upsertSQL = `
INSERT INTO rankings (user_id, display_name, level, total_xp, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id) DO UPDATE
SET display_name = EXCLUDED.display_name,
	level = EXCLUDED.level,
	total_xp = EXCLUDED.total_xp,
	updated_at = now()`

// Upsert writes the user's current standing into the projection.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, displayName string, level int, totalXP int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertSQL, userID, displayName, level, totalXP); err != nil {
		return postgres.MapError(err, "ranking", userID)
	}
	return nil
}

// ListTop returns the best-ranked rows in board order. Rank fields are left
// zero; the caller assigns positions.
func (r *Repo) ListTop(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := r.sb.
		Select(rankingColumns).
		From("rankings").
		OrderBy(boardOrder)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list top: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list top: %w", err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.Level, &e.TotalXP, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list top: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list top: %w", err)
	}
	return entries, nil
}

// GetByUserID returns a single user's projection row.
// Returns domain.ErrNotFound when the user has no ranking yet.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.LeaderboardEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := r.sb.
		Select(rankingColumns).
		From("rankings").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ranking: %w", err)
	}

	var e domain.LeaderboardEntry
	err = q.QueryRow(ctx, sql, args...).
		Scan(&e.UserID, &e.DisplayName, &e.Level, &e.TotalXP, &e.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "ranking", userID)
	}
	return &e, nil
}

// CountHigher returns how many users hold strictly more total xp.
func (r *Repo) CountHigher(ctx context.Context, totalXP int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := r.sb.
		Select("count(*)").
		From("rankings").
		Where(squirrel.Gt{"total_xp": totalXP}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count higher: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count higher: %w", err)
	}
	return n, nil
}

const rebuildSQL = `
INSERT INTO rankings (user_id, display_name, level, total_xp, updated_at)
SELECT user_id, display_name, level, total_xp, updated_at
FROM user_progress
ON CONFLICT (user_id) DO UPDATE
SET display_name = EXCLUDED.display_name,
	level = EXCLUDED.level,
	total_xp = EXCLUDED.total_xp,
	updated_at = EXCLUDED.updated_at`

// Rebuild recomputes the whole projection from user_progress in one
// set-based statement. Returns the number of rows written.
func (r *Repo) Rebuild(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, rebuildSQL)
	if err != nil {
		return 0, fmt.Errorf("rebuild rankings: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the total number of ranked users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM rankings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rankings: %w", err)
	}
	return n, nil
}
