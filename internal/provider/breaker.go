package provider

import (
	"sync"
	"time"
)

// breaker trips a source that keeps failing so the aggregator gets an
// immediate Unavailable instead of burning the full timeout and retry budget
// on every case. After the cooldown the next call probes the source again; a
// success resets the count, a failure re-opens.
type breaker struct {
	mu               sync.Mutex
	failureCount     int
	failureThreshold int
	cooldown         time.Duration
	openUntil        time.Time
	now              func() time.Time
}

func newBreaker() *breaker {
	return &breaker{
		failureThreshold: 5,
		cooldown:         30 * time.Second,
		now:              time.Now,
	}
}

// allow reports whether a call may proceed.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.now().Before(b.openUntil)
}

func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failureCount++
	if b.failureCount >= b.failureThreshold {
		b.openUntil = b.now().Add(b.cooldown)
		b.failureCount = 0
	}
}

func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failureCount = 0
}
