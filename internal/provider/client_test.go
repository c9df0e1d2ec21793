package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseflow/internal/domain"
	"caseflow/pkg/platform/sentinel"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(call fetchFunc[string], policy RetryPolicy) *Client[string] {
	c := NewClient(domain.SourceCitizen, call, 200*time.Millisecond, policy, testLogger(), nil)
	// No real sleeping in unit tests.
	c.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return c
}

func TestClient_Fetch_Success(t *testing.T) {
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		return "record", nil
	}, DefaultRetryPolicy())

	res := c.Fetch(context.Background(), "123", time.Now())

	require.True(t, res.OK)
	assert.Equal(t, "record", res.Value)
}

func TestClient_Fetch_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("connection reset")
		}
		return "record", nil
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2})

	res := c.Fetch(context.Background(), "123", time.Now())

	require.True(t, res.OK)
	assert.Equal(t, 3, attempts)
}

func TestClient_Fetch_ExhaustsRetries(t *testing.T) {
	attempts := 0
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		attempts++
		return "", errors.New("connection reset")
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2})

	res := c.Fetch(context.Background(), "123", time.Now())

	require.False(t, res.OK)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, res.Reason, "citizen unavailable")
	assert.Contains(t, res.Reason, "connection reset")
}

func TestClient_Fetch_NotFoundIsNotRetried(t *testing.T) {
	attempts := 0
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		attempts++
		return "", fmt.Errorf("citizen 123: %w", sentinel.ErrNotFound)
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2})

	res := c.Fetch(context.Background(), "123", time.Now())

	require.False(t, res.OK)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, "not found", res.Reason)
}

func TestClient_Fetch_PanicBecomesUnavailable(t *testing.T) {
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		panic("adapter bug")
	}, DefaultRetryPolicy())

	res := c.Fetch(context.Background(), "123", time.Now())

	require.False(t, res.OK)
	assert.Contains(t, res.Reason, "internal error")
	assert.Contains(t, res.Reason, "adapter bug")
}

func TestClient_Fetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := newTestClient(func(callCtx context.Context, _ string, _ time.Time) (string, error) {
		cancel()
		return "", callCtx.Err()
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2})

	res := c.Fetch(ctx, "123", time.Now())

	require.False(t, res.OK)
	assert.Contains(t, res.Reason, "cancelled")
}

func TestClient_Fetch_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		return "", errors.New("down")
	}, RetryPolicy{MaxAttempts: 1})
	c.breaker.failureThreshold = 2
	c.breaker.cooldown = time.Minute

	// Two failed fetches trip the breaker.
	c.Fetch(context.Background(), "123", time.Now())
	c.Fetch(context.Background(), "123", time.Now())

	res := c.Fetch(context.Background(), "123", time.Now())
	require.False(t, res.OK)
	assert.Equal(t, "circuit open", res.Reason)
}

func TestClient_Fetch_CircuitProbesAfterCooldown(t *testing.T) {
	healthy := false
	c := newTestClient(func(context.Context, string, time.Time) (string, error) {
		if healthy {
			return "record", nil
		}
		return "", errors.New("down")
	}, RetryPolicy{MaxAttempts: 1})

	now := time.Now()
	c.breaker.failureThreshold = 1
	c.breaker.cooldown = time.Minute
	c.breaker.now = func() time.Time { return now }

	c.Fetch(context.Background(), "123", time.Now())
	assert.Equal(t, "circuit open", c.Fetch(context.Background(), "123", time.Now()).Reason)

	// Past the cooldown the next call probes the recovered source.
	now = now.Add(2 * time.Minute)
	healthy = true
	res := c.Fetch(context.Background(), "123", time.Now())
	assert.True(t, res.OK)
}
