package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTemplate inserts a review template for the user. intervals may be nil,
// in which case the standard 0/1/7/30 offsets are used.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, isDefault bool, intervals []int) domain.ReviewTemplate {
	t.Helper()
	ctx := context.Background()

	if intervals == nil {
		intervals = domain.DefaultIntervals
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	tmpl := domain.ReviewTemplate{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Template " + uniqueSuffix(),
		IsDefault: isDefault,
		Intervals: intervals,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO review_templates (id, user_id, name, is_default, intervals, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tmpl.ID, tmpl.UserID, tmpl.Name, tmpl.IsDefault, tmpl.Intervals, tmpl.CreatedAt, tmpl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate insert: %v", err)
	}

	return tmpl
}

// SeedItem inserts a study item with the given review slots. nil is stored
// as an empty slot array.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID, templateID uuid.UUID, reviews []domain.ReviewSlot) domain.StudyItem {
	t.Helper()
	ctx := context.Background()

	if reviews == nil {
		reviews = []domain.ReviewSlot{}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.StudyItem{
		ID:          uuid.New(),
		UserID:      userID,
		TemplateID:  templateID,
		Title:       "Item " + uniqueSuffix(),
		DateStudied: now.Truncate(24 * time.Hour),
		Reviews:     reviews,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	reviewsJSON, err := json.Marshal(item.Reviews)
	if err != nil {
		t.Fatalf("testhelper: SeedItem marshal reviews: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO study_items (id, user_id, template_id, title, date_studied, reviews, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.UserID, item.TemplateID, item.Title, item.DateStudied, reviewsJSON, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedProgress inserts a user_progress row together with its rankings
// projection entry.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, level int, totalXP int64) domain.UserProgress {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.UserProgress{
		UserID:       userID,
		DisplayName:  "User " + uniqueSuffix(),
		Level:        level,
		TotalXP:      totalXP,
		MemoryFactor: 1.0,
		Stats:        map[string]int{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO user_progress (user_id, display_name, level, xp, total_xp, memory_factor, badges, achievements, stats, created_at, updated_at)
		 VALUES ($1, $2, $3, 0, $4, $5, '[]', '[]', '{}', $6, $7)`,
		p.UserID, p.DisplayName, p.Level, p.TotalXP, p.MemoryFactor, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress insert user_progress: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO rankings (user_id, display_name, level, total_xp, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.UserID, p.DisplayName, p.Level, p.TotalXP, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress insert rankings: %v", err)
	}

	return p
}
