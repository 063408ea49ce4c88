// Package template implements the review-template repository using
// PostgreSQL. Interval offsets are stored as a native integer array.
package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/studytrack/studytrack-backend/internal/adapter/postgres"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const templateColumns = `id, user_id, name, description, is_default, intervals, created_at, updated_at`

const createSQL = `
INSERT INTO review_templates (user_id, name, description, is_default, intervals)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + templateColumns

const getByIDSQL = `
SELECT ` + templateColumns + `
FROM review_templates
WHERE id = $1 AND user_id = $2`

const getDefaultSQL = `
SELECT ` + templateColumns + `
FROM review_templates
WHERE user_id = $1 AND is_default`

const listByUserSQL = `
SELECT ` + templateColumns + `
FROM review_templates
WHERE user_id = $1
ORDER BY is_default DESC, name`

const updateSQL = `
UPDATE review_templates
SET name = $3, description = $4, is_default = $5, intervals = $6, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + templateColumns

const deleteSQL = `
DELETE FROM review_templates
WHERE id = $1 AND user_id = $2`

const clearDefaultSQL = `
UPDATE review_templates
SET is_default = false, updated_at = now()
WHERE user_id = $1 AND is_default`

// Create inserts a template and returns the stored row.
func (r *Repo) Create(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		tmpl.UserID, tmpl.Name, tmpl.Description, tmpl.IsDefault, tmpl.Intervals)

	created, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, "template", tmpl.ID)
	}
	return created, nil
}

// GetByID returns a template by primary key with user_id filter.
// Returns domain.ErrNotFound if the template does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tmpl, err := scanTemplate(q.QueryRow(ctx, getByIDSQL, templateID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "template", templateID)
	}
	return tmpl, nil
}

// GetDefault returns the user's default template.
// Returns domain.ErrNotFound when the user has none.
func (r *Repo) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tmpl, err := scanTemplate(q.QueryRow(ctx, getDefaultSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "default template", userID)
	}
	return tmpl, nil
}

// ListByUser returns all templates for a user, default first, then by name.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := []*domain.ReviewTemplate{}
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// Update rewrites the mutable fields and returns the stored row.
func (r *Repo) Update(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		tmpl.ID, tmpl.UserID, tmpl.Name, tmpl.Description, tmpl.IsDefault, tmpl.Intervals)

	updated, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, "template", tmpl.ID)
	}
	return updated, nil
}

// Delete removes a template. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, templateID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, templateID, userID)
	if err != nil {
		return postgres.MapError(err, "template", templateID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", templateID, domain.ErrNotFound)
	}
	return nil
}

// ClearDefault unsets the default flag on whichever template carries it.
// A no-op when the user has no default.
func (r *Repo) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, clearDefaultSQL, userID); err != nil {
		return postgres.MapError(err, "default template", userID)
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*domain.ReviewTemplate, error) {
	var t domain.ReviewTemplate
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.IsDefault,
		&t.Intervals, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
