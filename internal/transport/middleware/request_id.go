package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/pkg/ctxutil"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds ids copied from callers into logs and audit rows.
const maxRequestIDLen = 128

// RequestID propagates the caller's X-Request-Id or assigns a fresh one.
// Oversized incoming ids are replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
