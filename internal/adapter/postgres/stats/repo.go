// Package stats implements the read-only reporting queries over approved
// applications.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

// Repo runs aggregate queries for the reporting projection.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type bucketRow struct {
	GroupName string `db:"group_name"`
	Month     int    `db:"month"`
	Type      string `db:"type"`
	Total     int    `db:"total"`
}

// dimensionColumns whitelists the customer columns a report may group by.
var dimensionColumns = map[domain.StatsDimension]string{
	domain.StatsDimensionIndustry: "c.industry",
	domain.StatsDimensionRegion:   "c.region",
}

// ApprovedBuckets counts APPROVED applications reviewed within the UTC
// calendar year, grouped by dimension value, month and type. Customers
// without a value are grouped under domain.UnknownGroup.
func (r *Repo) ApprovedBuckets(ctx context.Context, year int, dim domain.StatsDimension) ([]domain.StatsBucket, error) {
	col, ok := dimensionColumns[dim]
	if !ok {
		return nil, domain.NewValidationError("dimension", "must be industry or region")
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	groupExpr := fmt.Sprintf("COALESCE(NULLIF(%s, ''), '%s')", col, domain.UnknownGroup)
	sql, args, err := postgres.Builder.
		Select(
			groupExpr+" AS group_name",
			"EXTRACT(MONTH FROM a.reviewed_at AT TIME ZONE 'UTC')::int AS month",
			"a.type AS type",
			"count(*)::int AS total",
		).
		From("applications a").
		Join("customers c ON c.id = a.customer_id").
		Where(squirrel.Eq{"a.status": string(domain.ApplicationStatusApproved)}).
		Where(squirrel.GtOrEq{"a.reviewed_at": start}).
		Where(squirrel.Lt{"a.reviewed_at": end}).
		GroupBy("1", "2", "3").
		OrderBy("1", "2", "3").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	var rows []bucketRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("stats %s %d: %w", dim, year, err)
	}

	buckets := make([]domain.StatsBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.StatsBucket{
			Group: row.GroupName,
			Month: row.Month,
			Type:  domain.ApplicationType(row.Type),
			Count: row.Total,
		})
	}
	return buckets, nil
}
