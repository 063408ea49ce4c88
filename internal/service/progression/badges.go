package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/domain"
)

// badgeDef declares one awardable badge: a counter read from the aggregate
// and the threshold it must reach.
type badgeDef struct {
	id          string
	name        string
	description string
	icon        string
	threshold   int
	counter     func(p *domain.UserProgress) int
}

func statCounter(name string) func(*domain.UserProgress) int {
	return func(p *domain.UserProgress) int { return p.Stat(name) }
}

func streakCounter(p *domain.UserProgress) int { return p.StreakDays }
func levelCounter(p *domain.UserProgress) int  { return p.Level }

// badgeDefs is the full badge catalog, ordered for deterministic award
// order. Ids are stable; renames touch only the display fields.
var badgeDefs = []badgeDef{
	{"first-study", "First Steps", "Register your first study item", "🌱", 1, statCounter(domain.StatStudiesCreated)},
	{"studies-10", "Collector", "Register 10 study items", "📚", 10, statCounter(domain.StatStudiesCreated)},
	{"studies-50", "Archivist", "Register 50 study items", "🗂️", 50, statCounter(domain.StatStudiesCreated)},
	{"studies-100", "Librarian", "Register 100 study items", "🏛️", 100, statCounter(domain.StatStudiesCreated)},

	{"first-review", "Getting Started", "Complete your first review", "✅", 1, statCounter(domain.StatReviewsCompleted)},
	{"reviews-10", "Reviewer", "Complete 10 reviews", "🔁", 10, statCounter(domain.StatReviewsCompleted)},
	{"reviews-50", "Dedicated", "Complete 50 reviews", "💪", 50, statCounter(domain.StatReviewsCompleted)},
	{"reviews-100", "Relentless", "Complete 100 reviews", "🏆", 100, statCounter(domain.StatReviewsCompleted)},

	{"streak-3", "Warming Up", "Keep a 3-day study streak", "🔥", 3, streakCounter},
	{"streak-7", "One Week Strong", "Keep a 7-day study streak", "⚡", 7, streakCounter},
	{"streak-14", "Fortnight", "Keep a 14-day study streak", "🌟", 14, streakCounter},
	{"streak-30", "Iron Habit", "Keep a 30-day study streak", "👑", 30, streakCounter},

	{"level-5", "Apprentice", "Reach level 5", "🎓", 5, levelCounter},
	{"level-10", "Scholar", "Reach level 10", "🧠", 10, levelCounter},
	{"level-20", "Master", "Reach level 20", "🥇", 20, levelCounter},
}

// applyBadges awards every badge whose counter meets its threshold and is
// not yet in the set: badge entry, achievement log entry, and the fixed
// bonus xp, all on the in-memory aggregate. Awarding a badge can level the
// user up, which can in turn unlock a level badge, so the catalog is
// re-scanned until a pass awards nothing.
func (s *Service) applyBadges(p *domain.UserProgress, now time.Time) []domain.Badge {
	var awarded []domain.Badge
	for {
		progressed := false
		for _, def := range badgeDefs {
			if p.HasBadge(def.id) || def.counter(p) < def.threshold {
				continue
			}

			badge := domain.Badge{
				ID:          def.id,
				Name:        def.name,
				Description: def.description,
				Icon:        def.icon,
				EarnedAt:    now,
			}
			p.Badges = append(p.Badges, badge)
			p.Achievements = append(p.Achievements, domain.Achievement{
				Type:        domain.AchievementTypeBadge,
				Title:       fmt.Sprintf("Badge earned: %s", def.name),
				Description: def.description,
				Date:        now,
				BadgeID:     def.id,
			})
			s.applyExperience(p, s.cfg.BadgeBonusXP, fmt.Sprintf("badge: %s", def.name), now)

			awarded = append(awarded, badge)
			progressed = true
		}
		if !progressed {
			return awarded
		}
	}
}

// CheckBadges evaluates the badge catalog against the user's current
// counters and awards anything newly earned. Idempotent: already-held
// badges are never re-awarded.
func (s *Service) CheckBadges(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	var awarded []domain.Badge
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.progress.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		awarded = s.applyBadges(p, time.Now())
		if len(awarded) == 0 {
			return nil
		}

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

	for _, b := range awarded {
		s.events.BadgeAwarded(ctx, userID, b)
		s.log.InfoContext(ctx, "badge awarded", "user_id", userID, "badge_id", b.ID)
	}
	return awarded, nil
}
