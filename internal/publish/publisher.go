// Package publish announces finished decisions to downstream systems over two
// structurally different channels: a broadcast topic for anyone who cares,
// and point-to-point work queues for tasks exactly one worker must pick up.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"caseflow/internal/domain"
	"caseflow/internal/publish/metrics"
	"caseflow/internal/publish/ports"
)

// Config names the outbound topics and queues. It is injected at
// construction; there are no package-level topic constants.
type Config struct {
	DecidedTopic  string
	AlertTopic    string
	PaymentQueue  string
	DocumentQueue string
}

// Outcome reports what the publisher managed to deliver. Broadcast delivery
// is best-effort; a lost payment enqueue is escalated, never swallowed.
// Tests assert on this directly instead of scraping logs.
type Outcome struct {
	BroadcastOK bool
	PaymentOK   bool // true when no payment was owed or the enqueue succeeded
	DocumentOK  bool
	Escalated   bool
	Diagnostics []string
}

// Publisher emits the decided event and any implied work items.
type Publisher struct {
	cfg       Config
	broadcast ports.Broadcast
	work      ports.WorkQueue
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// New creates a publisher over the two channels.
func New(cfg Config, broadcast ports.Broadcast, work ports.WorkQueue, logger *slog.Logger, opts ...Option) *Publisher {
	p := &Publisher{cfg: cfg, broadcast: broadcast, work: work, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish emits exactly one decided event, plus a payment work item when the
// approval carries an amount and a document work item for every terminal
// outcome. It never errors: failures degrade the Outcome instead, and a
// failed payment enqueue escalates on the alert topic.
func (p *Publisher) Publish(ctx context.Context, c domain.Case, d domain.Decision, data domain.GatheredData) Outcome {
	out := Outcome{BroadcastOK: true, PaymentOK: true, DocumentOK: true}

	if err := p.broadcast.Publish(ctx, p.cfg.DecidedTopic, decidedEvent(c, d, data)); err != nil {
		// Best-effort: the decision stands even if nobody heard about it.
		out.BroadcastOK = false
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("broadcast: %v", err))
		p.metrics.IncrementFailure("broadcast")
		p.logger.WarnContext(ctx, "decided event publish failed",
			"case_id", c.ID,
			"topic", p.cfg.DecidedTopic,
			"error", err,
		)
	}

	if d.Approved && d.Amount > 0 {
		if err := p.work.Enqueue(ctx, p.cfg.PaymentQueue, paymentTask(c, d)); err != nil {
			out.PaymentOK = false
			out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("payment enqueue: %v", err))
			p.metrics.IncrementFailure("payment")
			p.escalatePayment(ctx, c, d, err, &out)
		}
	}

	if err := p.work.Enqueue(ctx, p.cfg.DocumentQueue, documentTask(c, d)); err != nil {
		out.DocumentOK = false
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("document enqueue: %v", err))
		p.metrics.IncrementFailure("document")
		p.logger.WarnContext(ctx, "document task enqueue failed",
			"case_id", c.ID,
			"queue", p.cfg.DocumentQueue,
			"error", err,
		)
	}

	return out
}

// escalatePayment raises a critical alert on the broadcast channel: an
// approved amount with no queued payment is money owed that no worker will
// ever pay out.
func (p *Publisher) escalatePayment(ctx context.Context, c domain.Case, d domain.Decision, cause error, out *Outcome) {
	out.Escalated = true
	p.metrics.IncrementEscalation()
	p.logger.ErrorContext(ctx, "payment enqueue failed, escalating",
		"case_id", c.ID,
		"amount", d.Amount,
		"error", cause,
	)
	if err := p.broadcast.Publish(ctx, p.cfg.AlertTopic, paymentFailureEvent(c, d, cause)); err != nil {
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("escalation broadcast: %v", err))
		p.logger.ErrorContext(ctx, "escalation event publish failed",
			"case_id", c.ID,
			"topic", p.cfg.AlertTopic,
			"error", err,
		)
	}
}
