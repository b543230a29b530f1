package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/default-registry/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Users         *UserHandler
	Customers     *CustomerHandler
	Reasons       *ReasonHandler
	Applications  *ApplicationHandler
	Notifications *NotificationHandler
	Stats         *StatsHandler
	Audit         *AuditHandler
	Files         *FileHandler
	// Metrics serves the prometheus exposition. Defaults to promhttp.Handler.
	Metrics http.Handler
}

// NewRouter mounts all routes on a ServeMux. loginLimit wraps the token
// endpoint only; it may be nil.
func NewRouter(h Handlers, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	metrics := h.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	mux.Handle("GET /metrics", metrics)

	var token http.Handler = http.HandlerFunc(h.Auth.Token)
	if loginLimit != nil {
		token = loginLimit(token)
	}
	mux.Handle("POST /auth/token", token)

	mux.HandleFunc("POST /users", h.Users.Create)
	mux.HandleFunc("GET /users", h.Users.List)
	mux.HandleFunc("PATCH /users/{id}/active", h.Users.SetActive)

	mux.HandleFunc("POST /customers", h.Customers.Create)
	mux.HandleFunc("GET /customers", h.Customers.List)
	mux.HandleFunc("GET /customers/{id}", h.Customers.Get)
	mux.HandleFunc("PATCH /customers/{id}", h.Customers.Update)
	mux.HandleFunc("DELETE /customers/{id}", h.Customers.Delete)

	mux.HandleFunc("POST /reasons", h.Reasons.Create)
	mux.HandleFunc("GET /reasons", h.Reasons.List)
	mux.HandleFunc("PATCH /reasons/{id}", h.Reasons.Update)
	mux.HandleFunc("DELETE /reasons/{id}", h.Reasons.Delete)

	mux.HandleFunc("POST /applications", h.Applications.Create)
	mux.HandleFunc("GET /applications", h.Applications.List)
	mux.HandleFunc("GET /applications/{id}", h.Applications.Get)
	mux.HandleFunc("POST /applications/{id}/review", h.Applications.Review)
	mux.HandleFunc("POST /applications/{id}/attachments", h.Applications.UploadAttachment)
	mux.HandleFunc("GET /applications/{id}/attachments", h.Applications.ListAttachments)
	mux.HandleFunc("GET /applications/{id}/attachments/presign", h.Applications.PresignAttachment)

	mux.HandleFunc("GET /notifications", h.Notifications.List)
	mux.HandleFunc("GET /notifications/unread-count", h.Notifications.UnreadCount)
	mux.HandleFunc("POST /notifications/{id}/read", h.Notifications.MarkRead)

	mux.HandleFunc("GET /stats/{dimension}", h.Stats.Report)
	mux.HandleFunc("GET /audit-logs", h.Audit.List)
	mux.HandleFunc("GET /files/{key...}", h.Files.Serve)

	return mux
}
