// Package dataloader provides per-request DataLoaders that batch the
// customer and reason lookups needed to enrich application listings into
// single SQL calls. Loaders call repositories directly; callers must have
// passed the read authorization check for the listing first.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type customerRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Customer, error)
}

type reasonRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Reason, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Customer customerRepo
	Reason   reasonRepo
}

// Loaders contains the per-request loaders. A missing key resolves to nil
// without an error.
type Loaders struct {
	CustomerByID *dataloader.Loader[uuid.UUID, *domain.Customer]
	ReasonByID   *dataloader.Loader[uuid.UUID, *domain.Reason]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CustomerByID: newLoader(byIDBatchFn(repos.Customer.GetByIDs, func(c domain.Customer) uuid.UUID { return c.ID })),
		ReasonByID:   newLoader(byIDBatchFn(repos.Reason.GetByIDs, func(r domain.Reason) uuid.UUID { return r.ID })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
