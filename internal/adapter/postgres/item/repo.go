// Package item implements the study-item repository using PostgreSQL.
// The review schedule is stored as a jsonb array on the item row: slots are
// only ever rewritten as part of an item-level operation, so the aggregate
// maps to a single row.
package item

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/studytrack/studytrack-backend/internal/adapter/postgres"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Repo provides study-item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study-item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, user_id, template_id, title, content, date_studied, reviews, created_at, updated_at`

const createSQL = `
INSERT INTO study_items (user_id, template_id, title, content, date_studied, reviews)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM study_items
WHERE id = $1 AND user_id = $2`

// FOR UPDATE serializes concurrent completions on the same item.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateScheduleSQL = `
UPDATE study_items
SET template_id = $3, reviews = $4, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + itemColumns

const listByUserSQL = `
SELECT ` + itemColumns + `
FROM study_items
WHERE user_id = $1
ORDER BY created_at DESC`

const deleteSQL = `
DELETE FROM study_items
WHERE id = $1 AND user_id = $2`

// Create inserts an item with its generated schedule and returns the stored row.
func (r *Repo) Create(ctx context.Context, item *domain.StudyItem) (*domain.StudyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	reviewsJSON, err := json.Marshal(item.Reviews)
	if err != nil {
		return nil, fmt.Errorf("marshal reviews: %w", err)
	}

	row := q.QueryRow(ctx, createSQL,
		item.UserID, item.TemplateID, item.Title, item.Content, item.DateStudied, reviewsJSON)

	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "study item", item.ID)
	}
	return created, nil
}

// GetByID returns an item by primary key with user_id filter.
// Returns domain.ErrNotFound if the item does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getByIDSQL, itemID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "study item", itemID)
	}
	return item, nil
}

// GetByIDForUpdate is GetByID with a row lock. Must run inside a transaction;
// outside one the lock is released immediately and provides nothing.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getByIDForUpdateSQL, itemID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "study item", itemID)
	}
	return item, nil
}

// UpdateSchedule rewrites the item's template association and full slot
// array, and returns the stored row.
func (r *Repo) UpdateSchedule(ctx context.Context, userID, itemID, templateID uuid.UUID, reviews []domain.ReviewSlot) (*domain.StudyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	reviewsJSON, err := json.Marshal(reviews)
	if err != nil {
		return nil, fmt.Errorf("marshal reviews: %w", err)
	}

	row := q.QueryRow(ctx, updateScheduleSQL, itemID, userID, templateID, reviewsJSON)

	updated, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "study item", itemID)
	}
	return updated, nil
}

// ListByUser returns all items for a user, newest first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudyItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []*domain.StudyItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Delete removes an item. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, itemID, userID)
	if err != nil {
		return postgres.MapError(err, "study item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("study item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.StudyItem, error) {
	var (
		item        domain.StudyItem
		reviewsJSON []byte
	)
	err := row.Scan(
		&item.ID, &item.UserID, &item.TemplateID, &item.Title, &item.Content,
		&item.DateStudied, &reviewsJSON, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reviewsJSON, &item.Reviews); err != nil {
		return nil, fmt.Errorf("unmarshal reviews: %w", err)
	}
	return &item, nil
}
