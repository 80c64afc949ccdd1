package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/liammahoney/site-api/internal/adapter/mail"
	"github.com/liammahoney/site-api/internal/adapter/postgres"
	projectrepo "github.com/liammahoney/site-api/internal/adapter/postgres/project"
	"github.com/liammahoney/site-api/internal/adapter/provider/github"
	"github.com/liammahoney/site-api/internal/config"
	"github.com/liammahoney/site-api/internal/metrics"
	authsvc "github.com/liammahoney/site-api/internal/service/auth"
	contactsvc "github.com/liammahoney/site-api/internal/service/contact"
	projectsvc "github.com/liammahoney/site-api/internal/service/project"
	"github.com/liammahoney/site-api/internal/transport/middleware"
	"github.com/liammahoney/site-api/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and serves HTTP until ctx is cancelled
// or the process receives SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	ghClient := github.NewClient(cfg.Auth, logger, github.WithObserver(m))
	mailer := mail.NewCommandMailer(cfg.Mail, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Config:   cfg,
		Logger:   logger,
		Auth:     authsvc.NewService(logger, ghClient, cfg.Auth, m),
		Projects: projectsvc.NewService(logger, projectrepo.New(pool), postgres.NewTxManager(pool)),
		Contact:  contactsvc.NewService(logger, mailer, m),
		Health: map[string]rest.Pinger{
			"database": pool,
			"mail":     mailer,
		},
		Metrics:  m,
		Gatherer: reg,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
