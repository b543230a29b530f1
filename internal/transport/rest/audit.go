package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/default-registry/internal/domain"
)

type auditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error)
}

// AuditHandler serves the audit trail.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// List handles GET /audit-logs?user_id=&action=&target_type=&start=&end=&limit=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.AuditFilter{
		UserID: q.id("user_id"),
		Start:  q.timestamp("start"),
		End:    q.timestamp("end"),
		Limit:  q.intOr("limit", 0),
	}
	if a := q.str("action"); a != nil {
		action := domain.AuditAction(*a)
		filter.Action = &action
	}
	if t := q.str("target_type"); t != nil {
		target := domain.TargetType(*t)
		filter.TargetType = &target
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	logs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(logs, toAuditLogResponse))
}
