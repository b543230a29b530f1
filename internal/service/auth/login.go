package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// Login authenticates a user with email + password and issues an access
// token. Unknown emails, wrong passwords and inactive accounts all yield
// ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.passwords.Verify(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login verify password: %w", err)
	}
	if !ok || !user.IsActive {
		s.log.WarnContext(ctx, "login rejected", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ActorOf())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	target := user.ID.String()
	if err := s.audit.Log(ctx, domain.AuditLog{
		UserID:     &user.ID,
		Action:     domain.AuditActionLogin,
		TargetType: domain.TargetTypeUser,
		TargetID:   &target,
		IP:         ctxutil.ClientIPFromCtx(ctx),
	}); err != nil {
		s.log.ErrorContext(ctx, "audit login", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// ValidateToken resolves a bearer token to the acting identity. The user is
// re-read so that deactivated accounts and role changes take effect
// immediately.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}
	if !user.IsActive {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	return user.ActorOf(), nil
}
