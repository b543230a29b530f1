// Package application implements the Application and attachment
// repositories using PostgreSQL.
package application

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const table = "applications"

var columns = []string{
	"id", "type", "customer_id", "reason_id", "latest_external_rating", "severity", "remark",
	"status", "created_by", "reviewed_by", "review_remark", "created_at", "reviewed_at",
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new application and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	var severity *string
	if a.Severity != nil {
		s := string(*a.Severity)
		severity = &s
	}

	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(
			a.ID, string(a.Type), a.CustomerID, a.ReasonID, a.LatestExternalRating, severity, a.Remark,
			string(a.Status), a.CreatedBy, a.ReviewedBy, a.ReviewRemark, a.CreatedAt, a.ReviewedAt,
		).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build application insert: %w", err)
	}

	var created domain.Application
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", a.ID)
	}
	return &created, nil
}

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate returns an application and locks its row until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return r.getOne(ctx, id, "FOR UPDATE")
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, suffix string) (*domain.Application, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build application query: %w", err)
	}

	var a domain.Application
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}
	return &a, nil
}

// List returns applications matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "a." + c
	}

	q := postgres.Builder.Select(qualified...).From(table + " a").OrderBy("a.created_at DESC", "a.id DESC")
	if filter.CustomerName != nil && *filter.CustomerName != "" {
		q = q.Join("customers c ON c.id = a.customer_id").
			Where(squirrel.ILike{"c.name": "%" + *filter.CustomerName + "%"})
	}
	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"a.customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"a.status": string(*filter.Status)})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"a.type": string(*filter.Type)})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build application list: %w", err)
	}

	apps := []domain.Application{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &apps, sql, args...); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// SaveReview persists the review outcome of a. The update only applies while
// the row is still PENDING; otherwise domain.ErrNotPending is returned.
func (r *Repo) SaveReview(ctx context.Context, a *domain.Application) error {
	sql, args, err := postgres.Builder.Update(table).
		Set("status", string(a.Status)).
		Set("reviewed_by", a.ReviewedBy).
		Set("review_remark", a.ReviewRemark).
		Set("reviewed_at", a.ReviewedAt).
		Where(squirrel.Eq{"id": a.ID, "status": string(domain.ApplicationStatusPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build review update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", a.ID, domain.ErrNotPending)
	}
	return nil
}
