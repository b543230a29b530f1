// Package reason implements the Reason catalogue repository using PostgreSQL.
package reason

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const table = "reasons"

var columns = []string{"id", "type", "description", "enabled", "sort_order"}

// UpdateParams holds optional fields for a partial reason update.
type UpdateParams struct {
	Description *string
	Enabled     *bool
	SortOrder   *int
}

// Repo provides reason persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reason repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a reason by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reason, error) {
	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reason query: %w", err)
	}

	var rs domain.Reason
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reason", id)
	}
	return &rs, nil
}

// GetByIDs returns the reasons with the given IDs in unspecified order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Reason, error) {
	if len(ids) == 0 {
		return []domain.Reason{}, nil
	}

	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reason batch query: %w", err)
	}

	reasons := []domain.Reason{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &reasons, sql, args...); err != nil {
		return nil, fmt.Errorf("get reasons by ids: %w", err)
	}
	return reasons, nil
}

// List returns reasons ordered by sort_order, then description.
func (r *Repo) List(ctx context.Context, filter domain.ReasonFilter) ([]domain.Reason, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("sort_order ASC", "description ASC")
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	if filter.EnabledOnly {
		q = q.Where(squirrel.Eq{"enabled": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reason list: %w", err)
	}

	reasons := []domain.Reason{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &reasons, sql, args...); err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	return reasons, nil
}

// Create inserts a new reason and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rs *domain.Reason) (*domain.Reason, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(rs.ID, string(rs.Type), rs.Description, rs.Enabled, rs.SortOrder).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reason insert: %w", err)
	}

	var created domain.Reason
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reason", rs.ID)
	}
	return &created, nil
}

// CreateIfAbsent inserts rs unless a reason with the same type and
// description exists. It reports whether a row was inserted.
func (r *Repo) CreateIfAbsent(ctx context.Context, rs *domain.Reason) (bool, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(rs.ID, string(rs.Type), rs.Description, rs.Enabled, rs.SortOrder).
		Suffix("ON CONFLICT (type, description) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build reason upsert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "reason", rs.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*domain.Reason, error) {
	q := postgres.Builder.Update(table).Where(squirrel.Eq{"id": id})
	changed := false
	if params.Description != nil {
		q = q.Set("description", *params.Description)
		changed = true
	}
	if params.Enabled != nil {
		q = q.Set("enabled", *params.Enabled)
		changed = true
	}
	if params.SortOrder != nil {
		q = q.Set("sort_order", *params.SortOrder)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := q.Suffix("RETURNING " + postgres.JoinColumns(columns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reason update: %w", err)
	}

	var rs domain.Reason
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reason", id)
	}
	return &rs, nil
}

// Delete removes a reason. Reasons referenced by applications yield
// domain.ErrConflict; disable them instead.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM reasons WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, "reason", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reason %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
