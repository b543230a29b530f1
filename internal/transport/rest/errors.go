package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Code   domain.Kind         `json:"code,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// statusOf maps an error kind to its HTTP status.
func statusOf(k domain.Kind) int {
	switch {
	case k == domain.KindNotFound:
		return http.StatusNotFound
	case k == domain.KindForbidden:
		return http.StatusForbidden
	case k == domain.KindUnauthorized:
		return http.StatusUnauthorized
	case k == domain.KindValidation, k.IsRuleViolation():
		return http.StatusBadRequest
	case k == domain.KindAlreadyExists, k == domain.KindConflict, k == domain.KindSerializationConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal errors are logged
// and replaced with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusOf(kind)

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, errorResponse{Error: "internal server error", Code: domain.KindInternal})
		return
	}

	resp := errorResponse{Error: err.Error(), Code: kind}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Errors
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a bounded JSON body into dst. Malformed bodies are
// reported as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryParams parses optional query parameters, collecting every failure
// into a single validation error.
type queryParams struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) str(name string) *string {
	v := q.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) intOr(name string, def int) int {
	v := q.r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return def
	}
	return n
}

func (q *queryParams) boolOr(name string, def bool) bool {
	v := q.r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be a boolean"})
		return def
	}
	return b
}

func (q *queryParams) id(name string) *uuid.UUID {
	v := q.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be a UUID"})
		return nil
	}
	return &id
}

// timestamp accepts RFC 3339 timestamps and plain dates.
func (q *queryParams) timestamp(name string) *time.Time {
	v := q.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	q.errs = append(q.errs, domain.FieldError{Field: name, Message: fmt.Sprintf("must be RFC 3339 or %s", time.DateOnly)})
	return nil
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}
