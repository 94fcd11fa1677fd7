package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bestofgoa/bok/internal/async"
	"github.com/bestofgoa/bok/internal/common"
	"github.com/bestofgoa/bok/internal/export"
	"github.com/bestofgoa/bok/internal/images"
	"github.com/bestofgoa/bok/internal/listings"
	repo "github.com/bestofgoa/bok/internal/repository"
	"github.com/bestofgoa/bok/internal/runner"
	"github.com/bestofgoa/bok/internal/server"
	"github.com/bestofgoa/bok/internal/submissions"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	listingRepo := repo.NewListingRepository(entc, logger)
	attributeRepo := repo.NewAttributeRepository(entc, logger)
	imageRepo := repo.NewImageRepository(entc, logger)
	submissionRepo := repo.NewSubmissionRepository(entc, logger)

	engine := runner.NewClient(cfg.Runner.BaseURL, cfg.Runner.Timeout, logger)

	store := images.NewHTTPStore(os.Getenv("MEDIA_TOKEN"), logger)
	cleanup := async.NewCleanupQueue(store, logger,
		async.WithWorkers(4),
		async.WithQueueSize(512),
	)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		cleanup.Shutdown(shutdownCtx)
	}()

	listingSvc := listings.NewService(listingRepo, attributeRepo, engine, store, logger)
	imageSvc := images.NewService(imageRepo, cleanup, logger)
	submissionSvc := submissions.NewService(submissionRepo, logger)
	exportSvc := export.NewService(listingRepo, logger)

	router := server.NewRouter(server.Handlers{
		Listings:    server.NewListingHandler(listingSvc, exportSvc, logger),
		Images:      server.NewImageHandler(imageSvc, logger),
		Submissions: server.NewSubmissionHandler(submissionSvc, logger),
	}, cfg.Server.CORSOrigins, pool, logger)

	srv := server.New(cfg.Server.Addr, router, cfg.Server.ShutdownTimeout, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
