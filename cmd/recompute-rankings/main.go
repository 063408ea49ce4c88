// Command recompute-rankings rebuilds the rankings projection from the
// user_progress table. Intended for recovery after a migration or manual
// data fix; normal operation keeps the projection in sync on every write.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/studytrack/studytrack-backend/internal/adapter/postgres/ranking"
	"github.com/studytrack/studytrack-backend/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rt, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer rt.Close()

	rankings := ranking.New(rt.Pool)

	written, err := rankings.Rebuild(ctx)
	if err != nil {
		rt.Log.Error("rebuild rankings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rt.Log.Info("rankings rebuilt", slog.Int64("rows", written))
}
