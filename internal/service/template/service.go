// Package template manages review-interval templates: CRUD, the per-user
// default flag, and first-use bootstrap of the standard template.
package template

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

type templateRepo interface {
	Create(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error)
	GetByID(ctx context.Context, userID, templateID uuid.UUID) (*domain.ReviewTemplate, error)
	GetDefault(ctx context.Context, userID uuid.UUID) (*domain.ReviewTemplate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ReviewTemplate, error)
	Update(ctx context.Context, tmpl *domain.ReviewTemplate) (*domain.ReviewTemplate, error)
	Delete(ctx context.Context, userID, templateID uuid.UUID) error
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements template management.
type Service struct {
	templates templateRepo
	tx        txManager
	log       *slog.Logger
	cfg       config.SchedulingConfig
}

// NewService creates a new template service.
func NewService(log *slog.Logger, templates templateRepo, tx txManager, cfg config.SchedulingConfig) *Service {
	return &Service{
		templates: templates,
		tx:        tx,
		log:       log.With("service", "template"),
		cfg:       cfg,
	}
}
