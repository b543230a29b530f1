// Command cleanup deletes read notifications older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/adapter/postgres/notification"
	"github.com/heartmarshall/default-registry/internal/app"
	"github.com/heartmarshall/default-registry/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Notifications.RetentionDays)

	deleted, err := notification.New(pool).DeleteReadBefore(ctx, threshold)
	if err != nil {
		logger.Error("notification cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("notification cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
