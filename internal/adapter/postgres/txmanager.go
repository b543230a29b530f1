package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls reuse the outer transaction.
type TxManager struct {
	db   TxBeginner
	opts pgx.TxOptions
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

// NewTxManager creates a new TxManager. The default isolation level is
// Read Committed; row locks taken with SELECT ... FOR UPDATE serialize the
// writers that matter.
func NewTxManager(db TxBeginner, opts ...TxOption) *TxManager {
	m := &TxManager{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// Serialization failures and deadlocks, whether raised by fn or by commit,
// are reported as domain.ErrSerializationConflict.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return mapTxError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapTxError(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}
