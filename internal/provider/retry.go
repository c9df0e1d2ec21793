package provider

import "time"

// RetryPolicy bounds how stubbornly a client re-asks a flaky source. It is
// executed by a plain loop in Client.Fetch; there is no framework-driven
// retry anywhere.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy retries twice beyond the first attempt with doubling
// delays: 50ms then 100ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 50 * time.Millisecond, Multiplier: 2}
}

// normalized clamps degenerate values so a zero policy still makes one
// attempt.
func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Multiplier < 1 {
		p.Multiplier = 1
	}
	return p
}

// Delay returns how long to wait before the given 1-based attempt. The first
// attempt never waits; each later attempt waits BaseDelay scaled by
// Multiplier per prior retry.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 1 || p.BaseDelay <= 0 {
		return 0
	}
	d := p.BaseDelay
	for i := 2; i < attempt; i++ {
		d = time.Duration(float64(d) * p.Multiplier)
	}
	return d
}
