package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/user"
)

type userService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
}

// UserHandler serves account administration.
type UserHandler struct {
	svc   userService
	retry *Retrier
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, retry *Retrier, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, retry: retry, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	FullName *string      `json:"full_name"`
	Role     *domain.Role `json:"role"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := retry(r.Context(), h.retry, func() (*domain.User, error) {
		return h.svc.CreateUser(r.Context(), user.CreateUserInput(req))
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// List handles GET /users?limit=&offset=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	limit, offset := q.intOr("limit", 0), q.intOr("offset", 0)
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	users, err := h.svc.ListUsers(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(users, toUserResponse))
}

// SetActive handles PATCH /users/{id}/active.
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req setActiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.IsActive == nil {
		respondError(w, r, h.log, domain.NewValidationError("is_active", "required"))
		return
	}

	u, err := retry(r.Context(), h.retry, func() (*domain.User, error) {
		return h.svc.SetActive(r.Context(), id, *req.IsActive)
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
