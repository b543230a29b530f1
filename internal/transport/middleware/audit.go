package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

type requestRecorder interface {
	RecordRequest(ctx context.Context, method, path string) error
}

// HTTPAudit appends an audit entry for every mutating request once the
// response has been written. Recording failures are logged and never
// change the response.
func HTTPAudit(recorder requestRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if !isMutating(r.Method) {
				return
			}
			ctx := context.WithoutCancel(r.Context())
			if err := recorder.RecordRequest(ctx, r.Method, r.URL.Path); err != nil {
				logger.ErrorContext(ctx, "record http audit",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
			}
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
