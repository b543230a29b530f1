package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

// byIDBatchFn adapts a "fetch many by primary key" repository call into a
// batch function returning one pointer per key, in key order.
func byIDBatchFn[T any](
	fetch func(ctx context.Context, ids []uuid.UUID) ([]T, error),
	idOf func(T) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		rows, err := fetch(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			byID[idOf(rows[i])] = &rows[i]
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*T]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
