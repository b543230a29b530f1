package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/customer"
)

type customerService interface {
	Create(ctx context.Context, input customer.CreateInput) (*domain.Customer, error)
	List(ctx context.Context, nameFilter *string) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input customer.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerHandler serves customer maintenance.
type CustomerHandler struct {
	svc   customerService
	retry *Retrier
	log   *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, retry *Retrier, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, retry: retry, log: logger.With("handler", "customer")}
}

type createCustomerRequest struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry"`
	Region   *string `json:"region"`
}

type updateCustomerRequest struct {
	Name      *string `json:"name"`
	Industry  *string `json:"industry"`
	Region    *string `json:"region"`
	IsDefault *bool   `json:"is_default"`
}

// Create handles POST /customers. Creating an existing name updates it.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := retry(r.Context(), h.retry, func() (*domain.Customer, error) {
		return h.svc.Create(r.Context(), customer.CreateInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

// List handles GET /customers?name=.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context(), newQueryParams(r).str("name"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(customers, toCustomerResponse))
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Update handles PATCH /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := retry(r.Context(), h.retry, func() (*domain.Customer, error) {
		return h.svc.Update(r.Context(), id, customer.UpdateInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
