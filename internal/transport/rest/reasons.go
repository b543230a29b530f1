package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/reason"
)

type reasonService interface {
	List(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error)
	Create(ctx context.Context, input reason.CreateInput) (*domain.Reason, error)
	Update(ctx context.Context, id uuid.UUID, input reason.UpdateInput) (*domain.Reason, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReasonHandler serves the reason catalogue.
type ReasonHandler struct {
	svc   reasonService
	retry *Retrier
	log   *slog.Logger
}

// NewReasonHandler creates a ReasonHandler.
func NewReasonHandler(svc reasonService, retry *Retrier, logger *slog.Logger) *ReasonHandler {
	return &ReasonHandler{svc: svc, retry: retry, log: logger.With("handler", "reason")}
}

type createReasonRequest struct {
	Type        domain.ApplicationType `json:"type"`
	Description string                 `json:"description"`
	Enabled     *bool                  `json:"enabled"`
	SortOrder   int                    `json:"sort_order"`
}

type updateReasonRequest struct {
	Description *string `json:"description"`
	Enabled     *bool   `json:"enabled"`
	SortOrder   *int    `json:"sort_order"`
}

// List handles GET /reasons?type=&enabled_only=.
func (h *ReasonHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := domain.ReasonFilter{EnabledOnly: q.boolOr("enabled_only", false)}
	if t := q.str("type"); t != nil {
		typ := domain.ApplicationType(*t)
		filter.Type = &typ
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	reasons, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reasons, toReasonResponse))
}

// Create handles POST /reasons.
func (h *ReasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReasonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rs, err := retry(r.Context(), h.retry, func() (*domain.Reason, error) {
		return h.svc.Create(r.Context(), reason.CreateInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReasonResponse(rs))
}

// Update handles PATCH /reasons/{id}.
func (h *ReasonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateReasonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rs, err := retry(r.Context(), h.retry, func() (*domain.Reason, error) {
		return h.svc.Update(r.Context(), id, reason.UpdateInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReasonResponse(rs))
}

// Delete handles DELETE /reasons/{id}. Referenced reasons must be disabled
// instead.
func (h *ReasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.retry.Do(r.Context(), func() error { return h.svc.Delete(r.Context(), id) }); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
