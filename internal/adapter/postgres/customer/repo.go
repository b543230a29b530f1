// Package customer implements the Customer repository using PostgreSQL.
package customer

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/default-registry/internal/adapter/postgres"
	"github.com/heartmarshall/default-registry/internal/domain"
)

const table = "customers"

var columns = []string{"id", "name", "industry", "region", "is_default", "created_at"}

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a customer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.getOne(ctx, postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}), id)
}

// GetForUpdate returns a customer and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return r.getOne(ctx, postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// GetByName returns a customer by its exact (normalized) name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	return r.getOne(ctx, postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"name": name}), name)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.SelectBuilder, key any) (*domain.Customer, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer query: %w", err)
	}

	var c domain.Customer
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", key)
	}
	return &c, nil
}

// GetByIDs returns the customers with the given IDs in unspecified order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return []domain.Customer{}, nil
	}

	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer batch query: %w", err)
	}

	customers := []domain.Customer{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &customers, sql, args...); err != nil {
		return nil, fmt.Errorf("get customers by ids: %w", err)
	}
	return customers, nil
}

// List returns customers ordered by name. A non-nil nameFilter restricts the
// result to names containing it, case-insensitively.
func (r *Repo) List(ctx context.Context, nameFilter *string) ([]domain.Customer, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("name ASC")
	if nameFilter != nil && *nameFilter != "" {
		q = q.Where(squirrel.ILike{"name": "%" + *nameFilter + "%"})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer list: %w", err)
	}

	customers := []domain.Customer{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &customers, sql, args...); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Create inserts a new customer and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.Industry, c.Region, c.IsDefault, c.CreatedAt).
		Suffix("RETURNING " + postgres.JoinColumns(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer insert: %w", err)
	}

	var created domain.Customer
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", c.Name)
	}
	return &created, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	q := postgres.Builder.Update(table).Where(squirrel.Eq{"id": id})
	changed := false
	if params.Name != nil {
		q = q.Set("name", *params.Name)
		changed = true
	}
	if params.Industry != nil {
		q = q.Set("industry", nullable(*params.Industry))
		changed = true
	}
	if params.Region != nil {
		q = q.Set("region", nullable(*params.Region))
		changed = true
	}
	if params.IsDefault != nil {
		q = q.Set("is_default", *params.IsDefault)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := q.Suffix("RETURNING " + postgres.JoinColumns(columns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer update: %w", err)
	}

	var c domain.Customer
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}
	return &c, nil
}

// SetDefault sets the customer's default flag.
func (r *Repo) SetDefault(ctx context.Context, id uuid.UUID, isDefault bool) error {
	sql, args, err := postgres.Builder.Update(table).
		Set("is_default", isDefault).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build customer flag update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HasApplications reports whether any application references the customer.
func (r *Repo) HasApplications(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE customer_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "customer", id)
	}
	return exists, nil
}

// Delete removes a customer. Customers referenced by applications cannot be
// deleted and yield domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, "customer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// nullable stores an empty string as NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
