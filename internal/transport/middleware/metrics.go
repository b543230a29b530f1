package middleware

import (
	"net/http"
	"strconv"
)

type requestCounter interface {
	HTTPRequest(method, statusClass string)
}

// Metrics counts requests by method and status class (2xx, 4xx, ...).
func Metrics(counter requestCounter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			counter.HTTPRequest(r.Method, strconv.Itoa(sw.status/100)+"xx")
		})
	}
}
