package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"caseflow/internal/domain"
	"caseflow/internal/provider/metrics"
	"caseflow/pkg/platform/sentinel"
)

// fetchFunc is one raw source call returning a normalized record.
type fetchFunc[T any] func(ctx context.Context, citizenID string, asOf time.Time) (T, error)

// Client wraps one external source with a per-attempt timeout, a retry loop
// and a circuit breaker. Fetch never returns an error and never panics: every
// failure mode settles as an Unavailable result, which is data the decision
// engine knows how to handle.
type Client[T any] struct {
	source  domain.Source
	call    fetchFunc[T]
	timeout time.Duration
	policy  RetryPolicy
	breaker *breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewClient builds a client for one source.
func NewClient[T any](source domain.Source, call fetchFunc[T], timeout time.Duration, policy RetryPolicy, logger *slog.Logger, m *metrics.Metrics) *Client[T] {
	return &Client[T]{
		source:  source,
		call:    call,
		timeout: timeout,
		policy:  policy.normalized(),
		breaker: newBreaker(),
		logger:  logger,
		metrics: m,
		sleep:   sleepCtx,
	}
}

// Source identifies which provider this client fronts.
func (c *Client[T]) Source() domain.Source {
	return c.source
}

// Fetch retrieves one record, retrying with bounded backoff. Unavailability
// is expected and frequent, so it logs at debug, never as an application
// error.
func (c *Client[T]) Fetch(ctx context.Context, citizenID string, asOf time.Time) domain.Result[T] {
	start := time.Now()
	res := c.fetch(ctx, citizenID, asOf)
	c.metrics.ObserveFetch(string(c.source), time.Since(start), res.OK)
	if !res.OK {
		c.logger.DebugContext(ctx, "provider unavailable",
			"source", c.source,
			"reason", res.Reason,
		)
	}
	return res
}

func (c *Client[T]) fetch(ctx context.Context, citizenID string, asOf time.Time) (res domain.Result[T]) {
	// An adapter panic must not cross the client boundary.
	defer func() {
		if r := recover(); r != nil {
			c.breaker.recordFailure()
			res = domain.Unavailable[T](fmt.Sprintf("internal error: %v", r))
		}
	}()

	if !c.breaker.allow() {
		return domain.Unavailable[T]("circuit open")
	}

	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if d := c.policy.Delay(attempt); d > 0 {
			if err := c.sleep(ctx, d); err != nil {
				return domain.Unavailable[T](fmt.Sprintf("cancelled: %v", err))
			}
		}
		if attempt > 1 {
			c.metrics.IncrementRetry(string(c.source))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		value, err := c.call(callCtx, citizenID, asOf)
		cancel()

		if err == nil {
			c.breaker.recordSuccess()
			return domain.Ok(value)
		}
		if errors.Is(err, sentinel.ErrNotFound) {
			// The source answered; there is just nothing there. Not worth
			// retrying and not a strike against the source.
			c.breaker.recordSuccess()
			return domain.Unavailable[T]("not found")
		}
		if ctx.Err() != nil {
			return domain.Unavailable[T](fmt.Sprintf("cancelled: %v", ctx.Err()))
		}
		lastErr = err
	}

	c.breaker.recordFailure()
	return domain.Unavailable[T](fmt.Sprintf("%s unavailable: %v", c.source, lastErr))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
