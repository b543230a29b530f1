package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

type notificationService interface {
	ListMine(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
}

// NotificationHandler serves the caller's notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type unreadCountResponse struct {
	Unread int `json:"unread"`
}

// List handles GET /notifications?unread_only=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	unreadOnly := q.boolOr("unread_only", false)
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListMine(r.Context(), unreadOnly)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toNotificationResponse))
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, unreadCountResponse{Unread: n})
}
