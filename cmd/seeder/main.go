// Command seeder creates the default Admin, Reviewer and Operator accounts
// and the built-in reason catalogue. Existing rows are left untouched, so
// it is safe to run repeatedly.
//
// Accounts come from the bootstrap section of the configuration; an account
// without a password is skipped.
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
	reasonrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/reason"
	userrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/user"
	"github.com/heartmarshall/default-registry/internal/app"
	"github.com/heartmarshall/default-registry/internal/auth"
	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/service/bootstrap"
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

	svc := bootstrap.NewService(logger,
		userrepo.New(pool),
		reasonrepo.New(pool),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		cfg.Bootstrap,
	)

	results, err := svc.Seed(ctx)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app.LogSeedResults(logger, results)
}
