// Package bootstrap seeds the default accounts and reason catalogue.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/domain"
)

type userRepo interface {
	CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error)
}

type reasonRepo interface {
	CreateIfAbsent(ctx context.Context, r *domain.Reason) (bool, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Result counts the rows touched by one seeding phase.
type Result struct {
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Service performs the idempotent bootstrap. Existing rows are never
// modified, so re-running it after an admin changed a password or disabled
// a reason keeps those changes.
type Service struct {
	log       *slog.Logger
	users     userRepo
	reasons   reasonRepo
	passwords passwordHasher
	cfg       config.BootstrapConfig
	now       func() time.Time
}

// NewService creates a new bootstrap service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	reasons reasonRepo,
	passwords passwordHasher,
	cfg config.BootstrapConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "bootstrap"),
		users:     users,
		reasons:   reasons,
		passwords: passwords,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Seed creates the default accounts and, when enabled, the reason catalogue.
func (s *Service) Seed(ctx context.Context) (map[string]Result, error) {
	results := make(map[string]Result, 2)

	users, err := s.seedUsers(ctx)
	if err != nil {
		return results, fmt.Errorf("bootstrap.Seed users: %w", err)
	}
	results["users"] = users
	s.logPhase(ctx, "users", users)

	if !s.cfg.SeedReasons {
		return results, nil
	}

	reasons, err := s.seedReasons(ctx)
	if err != nil {
		return results, fmt.Errorf("bootstrap.Seed reasons: %w", err)
	}
	results["reasons"] = reasons
	s.logPhase(ctx, "reasons", reasons)

	return results, nil
}

type account struct {
	email    string
	password string
	role     domain.Role
}

func (s *Service) accounts() []account {
	return []account{
		{s.cfg.AdminEmail, s.cfg.AdminPassword, domain.RoleAdmin},
		{s.cfg.ReviewerEmail, s.cfg.ReviewerPassword, domain.RoleReviewer},
		{s.cfg.OperatorEmail, s.cfg.OperatorPassword, domain.RoleOperator},
	}
}

func (s *Service) seedUsers(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	for _, a := range s.accounts() {
		email := domain.NormalizeEmail(a.email)
		if email == "" || a.password == "" {
			res.Skipped++
			continue
		}

		hash, err := s.passwords.Hash(a.password)
		if err != nil {
			return res, fmt.Errorf("hash %s: %w", a.role, err)
		}

		name := a.role.String()
		inserted, err := s.users.CreateIfAbsent(ctx, &domain.User{
			ID:           uuid.New(),
			Email:        email,
			FullName:     &name,
			PasswordHash: hash,
			Role:         a.role,
			IsActive:     true,
			CreatedAt:    s.now().UTC(),
		})
		if err != nil {
			return res, fmt.Errorf("create %s: %w", email, err)
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (s *Service) seedReasons(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	for _, r := range defaultReasons {
		inserted, err := s.reasons.CreateIfAbsent(ctx, &domain.Reason{
			ID:          uuid.New(),
			Type:        r.typ,
			Description: r.description,
			Enabled:     true,
			SortOrder:   r.order,
		})
		if err != nil {
			return res, fmt.Errorf("create %s #%d: %w", r.typ, r.order, err)
		}
		if inserted {
			res.Inserted++
		} else {
			res.Skipped++
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

func (s *Service) logPhase(ctx context.Context, phase string, r Result) {
	s.log.InfoContext(ctx, "bootstrap phase complete",
		slog.String("phase", phase),
		slog.Int("inserted", r.Inserted),
		slog.Int("skipped", r.Skipped),
		slog.Duration("duration", r.Duration),
	)
}
