package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/adapter/storage"
	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/metrics"
	"github.com/heartmarshall/default-registry/internal/service/bootstrap"
	"github.com/heartmarshall/default-registry/internal/transport/middleware"
)

// Run is the server entry point. It blocks until ctx is cancelled and the
// HTTP server has drained.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	files, err := storage.NewLocal(cfg.Storage)
	if err != nil {
		return err
	}

	events := NewEventPublisher(cfg.Kafka, logger)
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error("close event publisher", slog.String("error", err.Error()))
		}
	}()

	infra := Infra{Files: files, Events: events, Metrics: metrics.Default()}
	repos := NewRepos(pool)
	svcs := NewServices(cfg, logger, pool, repos, infra)

	if cfg.Bootstrap.SeedOnStart {
		results, err := svcs.Bootstrap.Seed(ctx)
		if err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		LogSeedResults(logger, results)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHTTPHandler(cfg, logger, pool, repos, svcs, infra, limiter)
	return serve(ctx, newHTTPServer(cfg.Server, handler), cfg.Server, logger)
}

// LogSeedResults writes one line per bootstrap phase in a stable order.
func LogSeedResults(logger *slog.Logger, results map[string]bootstrap.Result) {
	phases := make([]string, 0, len(results))
	for name := range results {
		phases = append(phases, name)
	}
	sort.Strings(phases)

	for _, name := range phases {
		r := results[name]
		logger.Info("bootstrap phase done",
			slog.String("phase", name),
			slog.Int("inserted", r.Inserted),
			slog.Int("skipped", r.Skipped),
			slog.Duration("duration", r.Duration),
		)
	}
}
