// Package progression implements the experience, level, streak, and badge
// engine. It owns the user_progress aggregate and keeps the rankings
// projection in sync with every experience change.
package progression

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

type progressRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)
	Create(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error)
	Update(ctx context.Context, p *domain.UserProgress) (*domain.UserProgress, error)
}

// rankingRepo is the write side of the leaderboard projection.
type rankingRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, displayName string, level int, totalXP int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Events receives progression notifications. Emission happens inside the
// owning transaction, before it commits, so implementations must not block
// and must tolerate a subsequent rollback.
type Events interface {
	LevelUp(ctx context.Context, userID uuid.UUID, newLevel int)
	BadgeAwarded(ctx context.Context, userID uuid.UUID, badge domain.Badge)
}

// NoopEvents discards all notifications.
type NoopEvents struct{}

func (NoopEvents) LevelUp(context.Context, uuid.UUID, int) {}

func (NoopEvents) BadgeAwarded(context.Context, uuid.UUID, domain.Badge) {}

// Service implements the progression engine.
type Service struct {
	progress progressRepo
	rankings rankingRepo
	tx       txManager
	events   Events
	log      *slog.Logger
	cfg      config.ProgressionConfig
}

// NewService creates a new progression service. Pass NoopEvents{} when no
// listener is wired.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	rankings rankingRepo,
	tx txManager,
	events Events,
	cfg config.ProgressionConfig,
) *Service {
	return &Service{
		progress: progress,
		rankings: rankings,
		tx:       tx,
		events:   events,
		log:      log.With("service", "progression"),
		cfg:      cfg,
	}
}
