package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/default-registry/internal/config"
)

// exposedHeaders are readable by browser clients: the request id for support
// tickets and the back-off hint of rate limited responses.
const exposedHeaders = RequestIDHeader + ", Retry-After"

// CORS answers preflight requests and tags responses for allowed origins.
// Preflights from other origins get 204 without allow headers, so the
// browser blocks the real request.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := make(map[string]bool)
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			ok := origin != "" && (allowed["*"] || allowed[origin])

			h := w.Header()
			h.Add("Vary", "Origin")
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if ok {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
