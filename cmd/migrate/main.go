// Command migrate applies pending database migrations and exits. Use it
// when the api runs with DATABASE_SKIP_MIGRATE=true.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/liammahoney/site-api/internal/adapter/postgres"
	"github.com/liammahoney/site-api/internal/app"
	"github.com/liammahoney/site-api/internal/config"
)

func main() {
	cfg, err := config.LoadMigrate()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
