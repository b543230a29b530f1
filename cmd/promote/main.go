// Command promote sets a user's role by email address. It is used to grant
// the first Admin on an installation without default accounts.
//
// Usage:
//
//	promote --email=user@example.com [--role=Admin]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/user"
	"github.com/heartmarshall/default-registry/internal/app"
	"github.com/heartmarshall/default-registry/internal/auth"
	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(domain.RoleAdmin), "target role: Admin, Reviewer or Operator")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=Admin]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := user.NewService(logger,
		userrepo.New(pool),
		auditrepo.New(pool),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		access.MustNewTable(),
		postgres.NewTxManager(pool),
	)

	if err := svc.Promote(ctx, *email, domain.Role(*role)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "No user found with email %q.\n", *email)
		} else {
			logger.Error("promote failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", *email, *role)
}
