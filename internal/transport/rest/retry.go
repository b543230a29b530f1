package rest

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/default-registry/internal/domain"
)

const (
	maxAttempts     = 3
	initialInterval = 25 * time.Millisecond
	maxInterval     = 250 * time.Millisecond
)

type retryCounter interface {
	Retried()
}

// Retrier re-runs a unit of work that the database aborted because of a
// concurrent writer. Every other failure is returned after one attempt.
type Retrier struct {
	counter retryCounter
	log     *slog.Logger
}

// NewRetrier creates a Retrier.
func NewRetrier(counter retryCounter, logger *slog.Logger) *Retrier {
	return &Retrier{counter: counter, log: logger.With("component", "retry")}
}

// Do runs op at most maxAttempts times.
func (rt *Retrier) Do(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialInterval
	b.MaxInterval = maxInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, maxAttempts-1), ctx)

	return backoff.RetryNotify(func() error {
		err := op()
		if err != nil && !domain.KindOf(err).Retryable() {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		rt.counter.Retried()
		rt.log.WarnContext(ctx, "retrying unit of work",
			slog.String("error", err.Error()),
			slog.Duration("wait", wait),
		)
	})
}

// retry runs op through rt and returns its value.
func retry[T any](ctx context.Context, rt *Retrier, op func() (T, error)) (T, error) {
	var out T
	err := rt.Do(ctx, func() error {
		var err error
		out, err = op()
		return err
	})
	return out, err
}
