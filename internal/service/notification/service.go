package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/access"
	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type authorizer interface {
	Check(actor domain.Actor, op access.Operation) error
}

// Service exposes the caller's own notifications.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	access        authorizer
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo, access authorizer) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		access:        access,
	}
}

func (s *Service) caller(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, s.access.Check(actor, access.NotificationRead)
}

// ListMine returns the caller's notifications, newest first.
func (s *Service) ListMine(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	actor, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.notifications.ListByUser(ctx, actor.UserID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("notification.ListMine: %w", err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read. Notifications of
// other users are reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	actor, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.notifications.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return n, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	actor, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.notifications.UnreadCount(ctx, actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return n, nil
}
