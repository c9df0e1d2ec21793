package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"caseflow/internal/platform/config"
)

// Producer wraps a franz-go client as the broadcast side of event
// publication. One produced record may reach any number of independent
// consumer groups; delivery is at-least-once.
type Producer struct {
	client *kgo.Client
	logger *slog.Logger
}

// NewProducer connects to the configured brokers. Topics are auto-created in
// development; production clusters pre-provision them.
func NewProducer(cfg config.Kafka, logger *slog.Logger) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &Producer{client: client, logger: logger}, nil
}

// Publish synchronously produces one JSON event. The record key is the case
// id when the event carries one, so per-case ordering survives partitioning.
func (p *Producer) Publish(ctx context.Context, topic string, event map[string]any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	rec := &kgo.Record{Topic: topic, Value: payload}
	if caseID, ok := event["case_id"].(string); ok {
		rec.Key = []byte(caseID)
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	return nil
}

// Health pings the cluster.
func (p *Producer) Health(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes and releases the client.
func (p *Producer) Close() {
	p.client.Close()
}
