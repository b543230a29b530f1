package reason

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	reasonrepo "github.com/heartmarshall/default-registry/internal/adapter/postgres/reason"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

const maxDescriptionLen = 500

// reasonRepo defines the reason repository interface needed by the service.
type reasonRepo interface {
	List(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error)
	Create(ctx context.Context, r *domain.Reason) (*domain.Reason, error)
	Update(ctx context.Context, id uuid.UUID, params reasonrepo.UpdateParams) (*domain.Reason, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditSink interface {
	Log(ctx context.Context, entry domain.AuditLog) error
}

type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the reason catalogue.
type Service struct {
	log     *slog.Logger
	reasons reasonRepo
	audit   auditSink
	access  authorizer
	tx      txManager
}

// NewService creates a new reason service instance.
func NewService(logger *slog.Logger, reasons reasonRepo, audit auditSink, access authorizer, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "reason"),
		reasons: reasons,
		audit:   audit,
		access:  access,
		tx:      tx,
	}
}

// CreateInput holds parameters for reason creation. Enabled defaults to true.
type CreateInput struct {
	Type        domain.ApplicationType
	Description string
	Enabled     *bool
	SortOrder   int
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be DEFAULT or REBIRTH"})
	}
	errs = checkDescription(errs, &i.Description)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds optional fields for a reason update.
type UpdateInput struct {
	Description *string
	Enabled     *bool
	SortOrder   *int
}

func (i UpdateInput) Validate() error {
	if errs := checkDescription(nil, i.Description); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkDescription(errs []domain.FieldError, d *string) []domain.FieldError {
	if d == nil {
		return errs
	}
	n := domain.NormalizeName(*d)
	switch {
	case n == "":
		return append(errs, domain.FieldError{Field: "description", Message: "required"})
	case utf8.RuneCountInString(n) > maxDescriptionLen:
		return append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	return errs
}

func (s *Service) authorize(ctx context.Context, op access.Operation) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, s.access.Check(actor, op)
}

func (s *Service) record(ctx context.Context, actor domain.Actor, action domain.AuditAction, id uuid.UUID) error {
	target := id.String()
	return s.audit.Log(ctx, domain.AuditLog{
		UserID:     &actor.UserID,
		Action:     action,
		TargetType: domain.TargetTypeReason,
		TargetID:   &target,
		IP:         ctxutil.ClientIPFromCtx(ctx),
	})
}

// List returns reasons ordered by sort order.
func (s *Service) List(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error) {
	if _, err := s.authorize(ctx, access.ReasonRead); err != nil {
		return nil, err
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be DEFAULT or REBIRTH")
	}

	reasons, err := s.reasons.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reason.List: %w", err)
	}
	return reasons, nil
}

// Create adds a catalogue entry.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Reason, error) {
	actor, err := s.authorize(ctx, access.ReasonManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	var created *domain.Reason
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.reasons.Create(ctx, &domain.Reason{
			ID:          uuid.New(),
			Type:        input.Type,
			Description: domain.NormalizeName(input.Description),
			Enabled:     enabled,
			SortOrder:   input.SortOrder,
		})
		if err != nil {
			return err
		}
		return s.record(ctx, actor, domain.AuditActionCreate, created.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("reason.Create: %w", err)
	}

	s.log.InfoContext(ctx, "reason created", slog.String("reason_id", created.ID.String()))
	return created, nil
}

// Update changes a catalogue entry. Disabling a reason does not affect
// applications that already reference it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reason, error) {
	actor, err := s.authorize(ctx, access.ReasonManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := reasonrepo.UpdateParams{Enabled: input.Enabled, SortOrder: input.SortOrder}
	if input.Description != nil {
		d := domain.NormalizeName(*input.Description)
		params.Description = &d
	}

	var updated *domain.Reason
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = s.reasons.Update(ctx, id, params)
		if err != nil {
			return err
		}
		return s.record(ctx, actor, domain.AuditActionUpdate, id)
	})
	if err != nil {
		return nil, fmt.Errorf("reason.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an unreferenced reason. Referenced reasons yield
// domain.ErrConflict and should be disabled instead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.authorize(ctx, access.ReasonManage)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.reasons.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, actor, domain.AuditActionDelete, id)
	})
	if err != nil {
		return fmt.Errorf("reason.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "reason deleted", slog.String("reason_id", id.String()))
	return nil
}
