// Command seed-templates bootstraps the standard review template for a user.
// Idempotent: if the user already has a default template, it is left as is.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack-backend/internal/app"
	"github.com/studytrack/studytrack-backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "user UUID to seed the default template for (required)")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid -user flag: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rt, err := app.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer rt.Close()

	ctx = ctxutil.WithUserID(ctx, userID)

	tmpl, err := rt.Templates.EnsureDefault(ctx)
	if err != nil {
		rt.Log.Error("ensure default template",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	rt.Log.Info("default template ready",
		slog.String("user_id", userID.String()),
		slog.String("template_id", tmpl.ID.String()),
		slog.String("name", tmpl.Name),
		slog.Any("intervals", tmpl.Intervals),
	)
}
