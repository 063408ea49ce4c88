// Package app holds the shared process bootstrap: configuration, logging,
// database pool, and service construction. The cmd/ entry points build a
// Runtime and run one bounded task against it.
package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studytrack/studytrack-backend/internal/adapter/postgres"
	itemrepo "github.com/studytrack/studytrack-backend/internal/adapter/postgres/item"
	progressrepo "github.com/studytrack/studytrack-backend/internal/adapter/postgres/progress"
	rankingrepo "github.com/studytrack/studytrack-backend/internal/adapter/postgres/ranking"
	templaterepo "github.com/studytrack/studytrack-backend/internal/adapter/postgres/template"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/service/leaderboard"
	"github.com/studytrack/studytrack-backend/internal/service/progression"
	"github.com/studytrack/studytrack-backend/internal/service/study"
	"github.com/studytrack/studytrack-backend/internal/service/template"
)

// Runtime is the assembled application: configuration, logger, database
// pool, and the four services wired to their repositories.
type Runtime struct {
	Cfg  *config.Config
	Log  *slog.Logger
	Pool *pgxpool.Pool

	Study       *study.Service
	Templates   *template.Service
	Progression *progression.Service
	Leaderboard *leaderboard.Service
}

// Bootstrap loads configuration, initializes logging, connects to the
// database, and constructs the services. The caller owns the Runtime and
// must Close it.
func Bootstrap(ctx context.Context) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	tx := postgres.NewTxManager(pool)
	items := itemrepo.New(pool)
	templates := templaterepo.New(pool)
	progressRepo := progressrepo.New(pool)
	rankings := rankingrepo.New(pool)

	progressionSvc := progression.NewService(logger, progressRepo, rankings, tx, progression.NoopEvents{}, cfg.Progression)

	return &Runtime{
		Cfg:         cfg,
		Log:         logger,
		Pool:        pool,
		Study:       study.NewService(logger, items, templates, progressionSvc, tx, cfg.Scheduling),
		Templates:   template.NewService(logger, templates, tx, cfg.Scheduling),
		Progression: progressionSvc,
		Leaderboard: leaderboard.NewService(logger, rankings, cfg.Leaderboard),
	}, nil
}

// Close releases the database pool.
func (r *Runtime) Close() {
	r.Pool.Close()
}
