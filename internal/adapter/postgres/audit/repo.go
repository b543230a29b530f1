// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	table = "audit_logs"

	// DefaultLimit applies when a filter does not set one.
	DefaultLimit = 100
	// MaxLimit caps a single listing.
	MaxLimit = 500
)

var columns = []string{"id", "user_id", "action", "target_type", "target_id", "details", "ip", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Log appends an audit record. A zero ID or CreatedAt is filled in.
func (r *Repo) Log(ctx context.Context, entry domain.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}

	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(
			entry.ID, entry.UserID, string(entry.Action), string(entry.TargetType),
			entry.TargetID, entry.Details, entry.IP, entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_log", entry.ID)
	}
	return nil
}

// List returns audit records matching filter, newest first.
// The limit defaults to DefaultLimit and is capped at MaxLimit.
func (r *Repo) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	q := postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC", "id DESC").Limit(uint64(limit))
	if filter.UserID != nil {
		q = q.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Action != nil {
		q = q.Where(squirrel.Eq{"action": string(*filter.Action)})
	}
	if filter.TargetType != nil {
		q = q.Where(squirrel.Eq{"target_type": string(*filter.TargetType)})
	}
	if filter.Start != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filter.Start})
	}
	if filter.End != nil {
		q = q.Where(squirrel.Lt{"created_at": *filter.End})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list: %w", err)
	}

	logs := []domain.AuditLog{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &logs, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
