package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/internal/service/memoryfactor"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

// CreateItem registers a study item and generates its review schedule from
// the resolved template (the explicit one or the user's default). Creation
// XP and stats are credited in the same transaction as the insert.
func (s *Service) CreateItem(ctx context.Context, in CreateItemInput) (*domain.StudyItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var tmpl *domain.ReviewTemplate
	var err error
	if in.TemplateID != nil {
		tmpl, err = s.templates.GetByID(ctx, userID, *in.TemplateID)
	} else {
		tmpl, err = s.templates.GetDefault(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve template: %w", err)
	}
	if len(tmpl.Intervals) > s.cfg.MaxIntervalsPerTemplate {
		return nil, domain.NewValidationError("template_id", "template has too many intervals")
	}

	offsets := tmpl.Intervals
	if in.Personalize {
		offsets, err = s.personalizedOffsets(ctx, userID, tmpl.Intervals, in.Difficulty, in.Importance)
		if err != nil {
			return nil, err
		}
	}

	studiedOn := in.StudiedOn
	if studiedOn.IsZero() {
		studiedOn = time.Now()
	}
	reviews, err := BuildSchedule(offsets, studiedOn)
	if err != nil {
		return nil, err
	}

	item := &domain.StudyItem{
		UserID:      userID,
		TemplateID:  tmpl.ID,
		Title:       in.Title,
		Content:     in.Content,
		DateStudied: DateOnly(studiedOn),
		Reviews:     reviews,
	}

	var created *domain.StudyItem
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.items.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if err := s.tracker.RecordItemCreated(ctx, userID); err != nil {
			return fmt.Errorf("record item created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "study item created",
		"user_id", userID, "item_id", created.ID, "reviews", len(created.Reviews))
	return created, nil
}

// personalizedOffsets scales every non-zero template offset by the user's
// current memory factor and the item's difficulty/importance ratings. A user
// with no progress row yet gets the neutral factor 1.0.
func (s *Service) personalizedOffsets(ctx context.Context, userID uuid.UUID, base []int, difficulty, importance int) ([]int, error) {
	factor := 1.0
	progress, err := s.tracker.Progress(ctx, userID)
	switch {
	case err == nil:
		factor = progress.MemoryFactor
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("load progress: %w", err)
	}
	difficulty = memoryfactor.ClampRating(difficulty)
	importance = memoryfactor.ClampRating(importance)

	out := make([]int, len(base))
	for i, offset := range base {
		out[i] = memoryfactor.AdjustedInterval(offset, factor, difficulty, importance)
	}
	return out, nil
}
