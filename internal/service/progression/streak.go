package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func wholeDaysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

// applyStreak advances the loaded aggregate's streak for activity on the
// given day and credits the daily bonus in memory. Same-day repeat activity
// changes nothing; a one-day gap extends the streak; anything longer resets
// it to 1 without a bonus. LongestStreak keeps the high-water mark across
// resets.
func (s *Service) applyStreak(p *domain.UserProgress, today time.Time) domain.StreakResult {
	today = dateOnly(today)

	reset := false
	if p.LastActivityDate != nil {
		switch gap := wholeDaysBetween(*p.LastActivityDate, today); {
		case gap <= 0:
			return domain.StreakResult{StreakDays: p.StreakDays}
		case gap == 1:
			p.StreakDays++
		default:
			p.StreakDays = 1
			reset = true
		}
	} else {
		p.StreakDays = 1
	}
	p.LastActivityDate = &today
	if p.StreakDays > p.LongestStreak {
		p.LongestStreak = p.StreakDays
	}
	if reset {
		return domain.StreakResult{StreakDays: 1, Reset: true}
	}

	bonus := 0
	if p.StreakDays > 1 {
		capped := p.StreakDays
		if capped > s.cfg.StreakBonusCapDays {
			capped = s.cfg.StreakBonusCapDays
		}
		bonus = capped * s.cfg.StreakBonusPerDay

		// One-time milestone bonuses on the exact day the streak lands.
		switch p.StreakDays {
		case 7:
			bonus += s.cfg.StreakMilestone7XP
		case 30:
			bonus += s.cfg.StreakMilestone30XP
		}
	}

	if bonus > 0 {
		s.applyExperience(p, bonus, fmt.Sprintf("%d-day streak", p.StreakDays), today)
	}
	return domain.StreakResult{StreakDays: p.StreakDays, BonusXP: bonus}
}

// RecordStreak registers activity on the given day and returns the streak
// state. Normally streak accounting rides along with RecordItemCreated and
// RecordReviewCompleted; this standalone form exists for activity sources
// outside the engine.
func (s *Service) RecordStreak(ctx context.Context, userID uuid.UUID, today time.Time) (*domain.StreakResult, error) {
	var result domain.StreakResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		result = s.applyStreak(p, today)

		if _, err := s.progress.Update(ctx, p); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		if result.BonusXP > 0 {
			if err := s.rankings.Upsert(ctx, p.UserID, p.DisplayName, p.Level, p.TotalXP); err != nil {
				return fmt.Errorf("upsert ranking: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Reset {
		s.log.InfoContext(ctx, "streak reset", "user_id", userID)
	}
	return &result, nil
}
