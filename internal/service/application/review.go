package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/adapter/kafka"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// Review moves a PENDING application into APPROVED or REJECTED.
//
// Preconditions are checked in this order: caller may review, application
// exists, application is PENDING, decision is valid, evidence is attached
// when approving a DEFAULT application. The status change, the customer
// flag, the applicant notification and the audit entry commit together.
// Locks are taken application first, then customer.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*domain.Application, error) {
	actor, err := s.authorize(ctx, access.ApplicationReview)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var reviewed *domain.Application
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.apps.GetForUpdate(ctx, input.ApplicationID)
		if err != nil {
			return err
		}
		if err := app.CheckReviewable(input.Decision); err != nil {
			return err
		}
		if app.RequiresEvidence(input.Decision) {
			n, err := s.apps.CountAttachments(ctx, app.ID)
			if err != nil {
				return fmt.Errorf("count attachments: %w", err)
			}
			if n == 0 {
				return domain.ErrAttachmentRequired
			}
		}

		// The customer lock is taken before reviewed_at is stamped so that
		// approvals for one customer get timestamps in commit order.
		flag := app.DefaultFlagAfter(input.Decision)
		if flag != nil {
			if _, err := s.custs.GetForUpdate(ctx, app.CustomerID); err != nil {
				return fmt.Errorf("lock customer: %w", err)
			}
		}

		app.ApplyReview(input.Decision, actor.UserID, domain.TrimOrNil(input.Remark), s.now().UTC())
		if err := s.apps.SaveReview(ctx, app); err != nil {
			return err
		}

		if flag != nil {
			if err := s.custs.SetDefault(ctx, app.CustomerID, *flag); err != nil {
				return fmt.Errorf("update customer flag: %w", err)
			}
		}

		if _, err := s.notify.Enqueue(ctx, app.CreatedBy, app.ReviewNotice()); err != nil {
			return fmt.Errorf("enqueue notification: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditLog{
			UserID:     &actor.UserID,
			Action:     domain.AuditActionReview,
			TargetType: domain.TargetTypeApplication,
			TargetID:   strPtr(app.ID.String()),
			Details:    strPtr(app.Status.String()),
			IP:         ctxutil.ClientIPFromCtx(ctx),
		}); err != nil {
			return fmt.Errorf("audit review: %w", err)
		}

		reviewed = app
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("application.Review: %w", err)
	}

	s.stats.Reviewed(reviewed.Type.String(), reviewed.Status.String())
	s.log.InfoContext(ctx, "application reviewed",
		slog.String("application_id", reviewed.ID.String()),
		slog.String("decision", reviewed.Status.String()),
		slog.String("reviewer_id", actor.UserID.String()),
	)

	if err := s.events.PublishReview(ctx, kafka.NewReviewEvent(reviewed)); err != nil {
		s.stats.EventFailed()
		s.log.WarnContext(ctx, "review event not published",
			slog.String("application_id", reviewed.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return reviewed, nil
}
