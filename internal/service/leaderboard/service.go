// Package leaderboard serves ranked views over the rankings projection. The
// top of the board is cached as a short-lived snapshot so repeated reads do
// not hit the database on every call.
package leaderboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/domain"
)

type rankingRepo interface {
	// ListTop returns the best-ranked rows ordered by total_xp DESC,
	// updated_at ASC, user_id ASC.
	ListTop(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.LeaderboardEntry, error)
	CountHigher(ctx context.Context, totalXP int64) (int, error)
	Count(ctx context.Context) (int, error)
}

// Service implements the leaderboard ranker.
type Service struct {
	rankings rankingRepo
	log      *slog.Logger
	cfg      config.LeaderboardConfig

	// now is swappable for snapshot-expiry tests.
	now func() time.Time

	mu         sync.RWMutex
	snapshot   []domain.LeaderboardEntry
	snapshotAt time.Time
}

// NewService creates a new leaderboard service.
func NewService(log *slog.Logger, rankings rankingRepo, cfg config.LeaderboardConfig) *Service {
	return &Service{
		rankings: rankings,
		log:      log.With("service", "leaderboard"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// TopN returns the n best-ranked users, rank filled in 1-based. n is capped
// at the configured snapshot size; n <= 0 returns the full snapshot.
func (s *Service) TopN(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 || n > s.cfg.TopN {
		n = s.cfg.TopN
	}

	entries, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(entries) {
		n = len(entries)
	}

	out := make([]domain.LeaderboardEntry, n)
	copy(out, entries[:n])
	return out, nil
}

// RankOf returns the user's position on the board. A snapshot hit yields the
// exact rank; outside the snapshot the rank is approximated by counting
// users with strictly more total xp, so ties and snapshot staleness can make
// it off by a few places.
func (s *Service) RankOf(ctx context.Context, userID uuid.UUID) (*domain.UserRank, error) {
	total, err := s.rankings.Count(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.UserID == userID {
			return &domain.UserRank{Rank: e.Rank, TotalUsers: total}, nil
		}
	}

	row, err := s.rankings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	higher, err := s.rankings.CountHigher(ctx, row.TotalXP)
	if err != nil {
		return nil, err
	}
	return &domain.UserRank{Rank: higher + 1, TotalUsers: total, Approximate: true}, nil
}

// Invalidate drops the cached snapshot. The next read refetches.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.snapshotAt = time.Time{}
	s.mu.Unlock()
}

func (s *Service) currentSnapshot(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	if s.snapshot != nil && s.now().Sub(s.snapshotAt) < s.cfg.SnapshotTTL {
		entries := s.snapshot
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	return s.refreshSnapshot(ctx)
}

func (s *Service) refreshSnapshot(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if s.snapshot != nil && s.now().Sub(s.snapshotAt) < s.cfg.SnapshotTTL {
		return s.snapshot, nil
	}

	entries, err := s.rankings.ListTop(ctx, s.cfg.TopN)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.snapshot = entries
	s.snapshotAt = s.now()
	s.log.DebugContext(ctx, "leaderboard snapshot refreshed", "entries", len(entries))
	return entries, nil
}
