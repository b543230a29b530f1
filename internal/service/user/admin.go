package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const defaultPageSize = 50

// CreateUser registers a new account (admin only). The role defaults to
// Operator.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	input.Email = domain.NormalizeEmail(input.Email)
	input.FullName = domain.TrimOrNil(input.FullName)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := domain.RoleOperator
	if input.Role != nil {
		role = *input.Role
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			FullName:     input.FullName,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
			CreatedAt:    s.now().UTC(),
		})
		if txErr != nil {
			return txErr
		}
		return s.record(ctx, &actor.UserID, domain.AuditActionCreate, created.ID, "role="+role.String())
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", role.String()),
	)
	return created, nil
}

// ListUsers returns a page of accounts (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// SetActive enables or disables an account (admin only). Admins cannot
// disable themselves.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if actor.UserID == id && !active {
		return nil, domain.NewValidationError("is_active", "cannot deactivate yourself")
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.users.SetActive(ctx, id, active)
		if txErr != nil {
			return txErr
		}
		return s.record(ctx, &actor.UserID, domain.AuditActionUpdate, id, fmt.Sprintf("is_active=%t", active))
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "user activation changed",
		slog.String("target_user_id", id.String()),
		slog.Bool("active", active),
	)
	return updated, nil
}

// Promote sets the role of the account with the given email. It is an
// operator console action and carries no caller identity.
func (s *Service) Promote(ctx context.Context, email string, role domain.Role) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "must be Admin, Reviewer or Operator")
	}

	if err := s.users.SetRoleByEmail(ctx, email, role); err != nil {
		return fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("email", email),
		slog.String("role", role.String()),
	)
	return nil
}
