package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// Create files a new PENDING application. The customer row stays locked
// from the rule check until the insert commits, so two concurrent
// applications for the same customer are evaluated one after the other.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Application, error) {
	actor, err := s.authorize(ctx, access.ApplicationCreate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Application
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		customer, err := s.custs.GetForUpdate(ctx, input.CustomerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("lock customer: %w", err)
		}
		reason, err := s.rsns.GetByID(ctx, input.ReasonID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get reason: %w", err)
		}

		if err := Validate(customer, reason, input.Type); err != nil {
			return err
		}

		created, err = s.apps.Create(ctx, &domain.Application{
			ID:                   uuid.New(),
			Type:                 input.Type,
			CustomerID:           customer.ID,
			ReasonID:             reason.ID,
			LatestExternalRating: domain.TrimOrNil(input.LatestExternalRating),
			Severity:             input.Severity,
			Remark:               domain.TrimOrNil(input.Remark),
			Status:               domain.ApplicationStatusPending,
			CreatedBy:            actor.UserID,
			CreatedAt:            s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert application: %w", err)
		}

		return s.audit.Log(ctx, domain.AuditLog{
			UserID:     &actor.UserID,
			Action:     domain.AuditActionCreate,
			TargetType: domain.TargetTypeApplication,
			TargetID:   strPtr(created.ID.String()),
			Details:    strPtr("type=" + created.Type.String()),
			IP:         ctxutil.ClientIPFromCtx(ctx),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("application.Create: %w", err)
	}

	s.stats.ApplicationCreated(created.Type.String())
	s.log.InfoContext(ctx, "application created",
		slog.String("application_id", created.ID.String()),
		slog.String("customer_id", created.CustomerID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}
