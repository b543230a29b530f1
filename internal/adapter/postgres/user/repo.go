// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "full_name", "password_hash", "role", "is_active", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &u, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.FullName, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var created domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return &created, nil
}

// CreateIfAbsent inserts u unless a user with the same email exists.
// It reports whether a row was inserted.
func (r *Repo) CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.FullName, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt).
		Suffix("ON CONFLICT (email) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user upsert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "user", u.Email)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns users ordered by creation time.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("created_at ASC", "email ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user list: %w", err)
	}

	users := []domain.User{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SetActive enables or disables a user and returns the updated row.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	sql, args, err := postgres.Builder.Update(table).
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// SetRoleByEmail changes the role of the user with the given email.
// It returns domain.ErrNotFound when no such user exists.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.Role) error {
	sql, args, err := postgres.Builder.Update(table).
		Set("role", string(role)).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build role update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return postgres.JoinColumns(columns)
}
