// Command migrate applies the embedded goose migrations to DATABASE_DSN.
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

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Int("count", applied))
}
