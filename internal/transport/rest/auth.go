package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenResult, error)
}

// AuthHandler serves the token endpoint.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// tokenRequest accepts "username" as an alias of "email" so OAuth2
// password-grant clients work unchanged.
type tokenRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r tokenRequest) login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        userResponse `json:"user"`
}

// Token handles POST /auth/token with a JSON or form-encoded body.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseTokenRequest(w, r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.login(),
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresAt:   result.ExpiresAt,
		User:        toUserResponse(result.User),
	})
}

func (h *AuthHandler) parseTokenRequest(w http.ResponseWriter, r *http.Request) (tokenRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		if err := r.ParseForm(); err != nil {
			return tokenRequest{}, domain.NewValidationError("body", "invalid form")
		}
		return tokenRequest{
			Email:    r.PostForm.Get("email"),
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	default:
		var req tokenRequest
		err := decodeJSON(w, r, &req)
		return req, err
	}
}
