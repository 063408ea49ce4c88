package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
	"github.com/studytrack/studytrack-backend/internal/service/memoryfactor"
)

// loadOrCreate returns the locked progress row, bootstrapping an empty
// aggregate on first activity.
func (s *Service) loadOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	p, err := s.progress.GetByUserIDForUpdate(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return s.progress.Create(ctx, newProgress(userID, ""))
}

func newProgress(userID uuid.UUID, displayName string) *domain.UserProgress {
	return &domain.UserProgress{
		UserID:       userID,
		DisplayName:  displayName,
		Level:        1,
		MemoryFactor: 1.0,
		Stats:        map[string]int{},
	}
}

// persist writes the aggregate and keeps the rankings projection in step.
func (s *Service) persist(ctx context.Context, p *domain.UserProgress) error {
	if _, err := s.progress.Update(ctx, p); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if err := s.rankings.Upsert(ctx, p.UserID, p.DisplayName, p.Level, p.TotalXP); err != nil {
		return fmt.Errorf("upsert ranking: %w", err)
	}
	return nil
}

// RecordItemCreated credits one study-item creation: stat counter, creation
// xp, streak, and badge evaluation. Runs on the transaction carried in ctx;
// the scheduler calls it inside the item-creation transaction.
func (s *Service) RecordItemCreated(ctx context.Context, userID uuid.UUID) error {
	p, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	levelBefore := p.Level

	p.Stats[domain.StatStudiesCreated]++
	s.applyExperience(p, s.cfg.CreateItemXP, "study item created", now)
	s.applyStreak(p, now)
	awarded := s.applyBadges(p, now)

	if err := s.persist(ctx, p); err != nil {
		return err
	}

	s.notify(ctx, p, levelBefore, awarded)
	return nil
}

// RecordReviewCompleted credits one review completion: stat counter, the
// memory-factor update when a recall rating was given, review xp, streak,
// and badge evaluation. Runs on the transaction carried in ctx.
func (s *Service) RecordReviewCompleted(ctx context.Context, userID uuid.UUID, memoryRating *int) error {
	p, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	levelBefore := p.Level

	if memoryRating != nil {
		rating := memoryfactor.ClampRating(*memoryRating)
		p.MemoryFactor = memoryfactor.Update(p.MemoryFactor, rating, p.CompletedReviews)
	}
	p.CompletedReviews++
	p.Stats[domain.StatReviewsCompleted]++

	s.applyExperience(p, s.cfg.CompleteReviewXP, "review completed", now)
	s.applyStreak(p, now)
	awarded := s.applyBadges(p, now)

	if err := s.persist(ctx, p); err != nil {
		return err
	}

	s.notify(ctx, p, levelBefore, awarded)
	return nil
}

// notify fires progression events. Emission happens before the caller's
// transaction commits; listeners treat the notifications as best-effort.
func (s *Service) notify(ctx context.Context, p *domain.UserProgress, levelBefore int, awarded []domain.Badge) {
	if p.Level > levelBefore {
		s.events.LevelUp(ctx, p.UserID, p.Level)
	}
	for _, b := range awarded {
		s.events.BadgeAwarded(ctx, p.UserID, b)
	}
}
