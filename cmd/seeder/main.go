// Command seeder imports portfolio projects from a JSON array file, such as
// a mongoexport --jsonArray dump. Projects whose title already exists are
// skipped, so the command can be re-run safely.
//
// Flags:
//
//	--file           path to the JSON export (overrides SEEDER_PROJECTS_PATH)
//	--dry-run        validate the file without writing to DB
//	--seeder-config  path to seeder YAML config file
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

	"github.com/liammahoney/site-api/internal/adapter/postgres"
	projectrepo "github.com/liammahoney/site-api/internal/adapter/postgres/project"
	"github.com/liammahoney/site-api/internal/app"
	"github.com/liammahoney/site-api/internal/app/seeder"
	"github.com/liammahoney/site-api/internal/config"
	projectsvc "github.com/liammahoney/site-api/internal/service/project"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

func main() {
	fileFlag := flag.String("file", "", "path to the JSON export")
	dryRunFlag := flag.Bool("dry-run", false, "validate the file without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.LoadMigrate()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, os.Stderr)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag, seeder.Overrides{File: *fileFlag, DryRun: *dryRunFlag})
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	f, err := os.Open(seederCfg.ProjectsPath)
	if err != nil {
		logger.Error("open input", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := projectsvc.NewService(logger, projectrepo.New(pool), postgres.NewTxManager(pool))

	// The operator running this command is trusted with admin writes.
	ctx = ctxutil.WithAdmin(ctx)

	res, err := seeder.NewImporter(logger, svc, seederCfg.DryRun).Run(ctx, f)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()), slog.Int("inserted", res.Inserted))
		os.Exit(1)
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
}
