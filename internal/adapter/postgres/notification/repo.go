// Package notification implements the Notification repository using PostgreSQL.
package notification

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

const table = "notifications"

var columns = []string{"id", "user_id", "content", "is_read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Enqueue stores an unread notification for userID.
func (r *Repo) Enqueue(ctx context.Context, userID uuid.UUID, content string) (*domain.Notification, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(uuid.New(), userID, content, false, r.now().UTC()).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification insert: %w", err)
	}

	var n domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	return &n, nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]domain.Notification, error) {
	q := postgres.Builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if unreadOnly {
		q = q.Where(squirrel.Eq{"is_read": false})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification list: %w", err)
	}

	items := []domain.Notification{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// MarkRead marks the notification as read. Notifications owned by another
// user are reported as domain.ErrNotFound.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	sql, args, err := postgres.Builder.Update(table).
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification update: %w", err)
	}

	var n domain.Notification
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, sql, args...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return &n, nil
}

// UnreadCount returns the number of unread notifications of the user.
func (r *Repo) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}
	return n, nil
}

// DeleteReadBefore removes read notifications created before threshold and
// returns the number of deleted rows.
func (r *Repo) DeleteReadBefore(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM notifications WHERE is_read AND created_at < $1`, threshold,
	)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
