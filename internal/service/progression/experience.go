package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// levelThreshold is the xp required to advance from the given level to the
// next one. Linear model: level 1 needs 100, level 2 needs 200, and so on.
func (s *Service) levelThreshold(level int) int {
	return s.cfg.XPPerLevel * level
}

// applyExperience credits xp to the loaded aggregate in memory: totals,
// level-ups, and the achievement log entry. The caller persists the
// aggregate and fires events afterwards.
func (s *Service) applyExperience(p *domain.UserProgress, amount int, reason string, now time.Time) domain.XPResult {
	p.TotalXP += int64(amount)
	p.XP += amount

	leveledUp := false
	for p.XP >= s.levelThreshold(p.Level) {
		p.XP -= s.levelThreshold(p.Level)
		p.Level++
		leveledUp = true
	}

	if leveledUp {
		p.Achievements = append(p.Achievements, domain.Achievement{
			Type:        domain.AchievementTypeLevelUp,
			Title:       fmt.Sprintf("Reached level %d", p.Level),
			Description: reason,
			Date:        now,
			XP:          amount,
		})
	} else {
		p.Achievements = append(p.Achievements, domain.Achievement{
			Type:        domain.AchievementTypeXP,
			Title:       fmt.Sprintf("+%d XP", amount),
			Description: reason,
			Date:        now,
			XP:          amount,
		})
	}

	return domain.XPResult{
		Level:     p.Level,
		XPInLevel: p.XP,
		TotalXP:   p.TotalXP,
		LeveledUp: leveledUp,
	}
}

// AddExperience credits xp to a user and returns the resulting level state.
// Rejects non-positive amounts with ErrInvalidInput. The progress row and
// the rankings projection are updated in one transaction.
func (s *Service) AddExperience(ctx context.Context, userID uuid.UUID, amount int, reason string) (*domain.XPResult, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	var result domain.XPResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		result = s.applyExperience(p, amount, reason, time.Now())

		if _, err := s.progress.Update(ctx, p); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		if err := s.rankings.Upsert(ctx, p.UserID, p.DisplayName, p.Level, p.TotalXP); err != nil {
			return fmt.Errorf("upsert ranking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.LeveledUp {
		s.events.LevelUp(ctx, userID, result.Level)
		s.log.InfoContext(ctx, "level up", "user_id", userID, "level", result.Level)
	}
	return &result, nil
}
