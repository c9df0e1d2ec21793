package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"caseflow/pkg/platform/sentinel"
)

// Queue is a Redis-list backed point-to-point work channel. LPUSH feeds the
// queue and BRPOP hands each task to exactly one consumer, which gives the
// single-consumer semantics the work channel contract requires.
type Queue struct {
	client *Client
}

// NewQueue wraps an existing client. Queues share the client's connection
// pool, so one Queue serves all work channels.
func NewQueue(client *Client) *Queue {
	return &Queue{client: client}
}

// Enqueue appends one task to the named queue.
func (q *Queue) Enqueue(ctx context.Context, queue string, task map[string]any) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}
	if err := q.client.LPush(ctx, queue, payload).Err(); err != nil {
		return fmt.Errorf("enqueue to %s: %w", queue, err)
	}
	return nil
}

// Dequeue blocks up to timeout for the next task on the named queue. Returns
// sentinel.ErrNotFound when the wait ends empty-handed.
func (q *Queue) Dequeue(ctx context.Context, queue string, timeout time.Duration) (map[string]any, error) {
	vals, err := q.client.BRPop(ctx, timeout, queue).Result()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue from %s: %w", queue, err)
	}
	var task map[string]any
	if err := json.Unmarshal([]byte(vals[1]), &task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return task, nil
}
