// Package study implements the review-scheduling business logic: schedule
// generation from interval templates, slot completion with adaptive
// re-anchoring, template switching, and the due-review/statistics queries.
package study

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	Create(ctx context.Context, item *domain.StudyItem) (*domain.StudyItem, error)
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error)
	GetByIDForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.StudyItem, error)
	UpdateSchedule(ctx context.Context, userID, itemID, templateID uuid.UUID, reviews []domain.ReviewSlot) (*domain.StudyItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudyItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

type templateRepo interface {
	GetByID(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error)
}

// progressTracker is the slice of the progression engine the scheduler
// needs: reading the memory factor for personalized schedules and crediting
// study/review activity. Implementations must be transaction-aware (honor
// the tx carried in ctx).
type progressTracker interface {
	Progress(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	RecordItemCreated(ctx context.Context, userID uuid.UUID) error
	RecordReviewCompleted(ctx context.Context, userID uuid.UUID, memoryRating *int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review scheduler.
type Service struct {
	items     itemRepo
	templates templateRepo
	tracker   progressTracker
	tx        txManager
	log       *slog.Logger
	cfg       config.SchedulingConfig
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	templates templateRepo,
	tracker progressTracker,
	tx txManager,
	cfg config.SchedulingConfig,
) *Service {
	return &Service{
		items:     items,
		templates: templates,
		tracker:   tracker,
		tx:        tx,
		log:       log.With("service", "study"),
		cfg:       cfg,
	}
}
