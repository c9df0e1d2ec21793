package ports

import "context"

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

// Broadcast is the fan-out side of event publication: one published event may
// reach any number of independent subscribers (audit, dashboards,
// notification). At-least-once delivery is assumed; exactly-once is not
// required.
type Broadcast interface {
	Publish(ctx context.Context, topic string, event map[string]any) error
}

// WorkQueue is the point-to-point side: one enqueued task is consumed by
// exactly one worker. Downstream workers tolerate duplicates by being
// idempotent.
type WorkQueue interface {
	Enqueue(ctx context.Context, queue string, task map[string]any) error
}
