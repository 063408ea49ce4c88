package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// Progress returns the user's progression aggregate.
func (s *Service) Progress(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	return s.progress.GetByUserID(ctx, userID)
}

// EnsureProgress bootstraps the progress row and rankings entry for a user.
// Idempotent: an existing row only picks up a changed display name.
func (s *Service) EnsureProgress(ctx context.Context, userID uuid.UUID, displayName string) (*domain.UserProgress, error) {
	var out *domain.UserProgress
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.GetByUserIDForUpdate(ctx, userID)
		switch {
		case err == nil:
			if displayName != "" && p.DisplayName != displayName {
				p.DisplayName = displayName
				if err := s.persist(ctx, p); err != nil {
					return err
				}
			}
			out = p
			return nil
		case errors.Is(err, domain.ErrNotFound):
			created, err := s.progress.Create(ctx, newProgress(userID, displayName))
			if err != nil {
				return fmt.Errorf("create progress: %w", err)
			}
			if err := s.rankings.Upsert(ctx, created.UserID, created.DisplayName, created.Level, created.TotalXP); err != nil {
				return fmt.Errorf("upsert ranking: %w", err)
			}
			out = created
			return nil
		default:
			return fmt.Errorf("get progress: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IncrementStat bumps a named counter by delta. Counters feed badge
// predicates; callers typically follow up with CheckBadges.
func (s *Service) IncrementStat(ctx context.Context, userID uuid.UUID, name string, delta int) error {
	if name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if delta <= 0 {
		return domain.NewValidationError("delta", "must be positive")
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.loadOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		if p.Stats == nil {
			p.Stats = map[string]int{}
		}
		p.Stats[name] += delta
		if _, err := s.progress.Update(ctx, p); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	})
}

// RecentAchievements returns the newest entries of the achievement log,
// most recent first. limit <= 0 returns everything.
func (s *Service) RecentAchievements(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Achievement, error) {
	p, err := s.progress.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	n := len(p.Achievements)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.Achievement, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, p.Achievements[i])
	}
	return out, nil
}
