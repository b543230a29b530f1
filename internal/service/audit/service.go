package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

const maxLimit = 500

type auditRepo interface {
	Log(ctx context.Context, entry domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error)
}

type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// Service reads the audit trail and records request-level entries.
type Service struct {
	log    *slog.Logger
	repo   auditRepo
	access authorizer
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, repo auditRepo, access authorizer) *Service {
	return &Service{
		log:    logger.With("service", "audit"),
		repo:   repo,
		access: access,
	}
}

// List returns audit entries, newest first. Admin only.
func (s *Service) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.access.Check(actor, access.AuditRead); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if filter.Limit < 0 || filter.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 500"})
	}
	if filter.Start != nil && filter.End != nil && !filter.Start.Before(*filter.End) {
		errs = append(errs, domain.FieldError{Field: "start", Message: "must be before end"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}
	return logs, nil
}

// RecordRequest appends an HTTP-level entry for a mutating request. It runs
// outside any business transaction; anonymous requests are recorded without
// a user.
func (s *Service) RecordRequest(ctx context.Context, method, path string) error {
	entry := domain.AuditLog{
		Action:     domain.AuditAction(method),
		TargetType: domain.TargetTypeHTTP,
		TargetID:   &path,
		IP:         ctxutil.ClientIPFromCtx(ctx),
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		entry.UserID = &id
	}

	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("audit.RecordRequest: %w", err)
	}
	return nil
}
