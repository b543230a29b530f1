package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/default-registry/internal/domain"
	"github.com/heartmarshall/default-registry/internal/service/stats"
)

type statsService interface {
	Report(ctx context.Context, input stats.ReportInput) (*domain.StatsReport, error)
}

// StatsHandler serves the reporting projection.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
	now func() time.Time
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats"), now: time.Now}
}

// Report handles GET /stats/{dimension}?year=&share=&trend=. The year
// defaults to the current one.
func (h *StatsHandler) Report(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := stats.ReportInput{
		Year:      q.intOr("year", h.now().Year()),
		Dimension: domain.StatsDimension(r.PathValue("dimension")),
		WithShare: q.boolOr("share", false),
		WithTrend: q.boolOr("trend", false),
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	report, err := h.svc.Report(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
