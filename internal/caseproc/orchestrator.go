// Package caseproc sequences one case through the processing pipeline:
// Gathering -> Deciding -> Persisting -> Publishing. Each stage completes
// before the next starts, no stage is re-entered, and unrelated cases never
// serialize behind each other — the orchestrator holds no per-run state.
package caseproc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"caseflow/internal/caseproc/metrics"
	"caseflow/internal/caseproc/ports"
	"caseflow/internal/domain"
	"caseflow/internal/gather"
	"caseflow/internal/publish"
	"caseflow/internal/rules"
)

const unknownType = "unknown"

// Orchestrator runs the per-case pipeline. Whole-pipeline retries are a
// caller decision; one invocation runs each case through the state machine
// exactly once.
type Orchestrator struct {
	cases     ports.CaseStore
	recorder  ports.DecisionRecorder
	gatherer  *gather.Gatherer
	publisher *publish.Publisher
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	now       func() time.Time
}

// New wires the orchestrator. timeout bounds one whole run; a safe value is
// the sum of the per-provider timeouts plus publish headroom.
func New(
	cases ports.CaseStore,
	recorder ports.DecisionRecorder,
	gatherer *gather.Gatherer,
	publisher *publish.Publisher,
	timeout time.Duration,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Orchestrator {
	return &Orchestrator{
		cases:     cases,
		recorder:  recorder,
		gatherer:  gatherer,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
		tracer:    otel.Tracer("caseflow/caseproc"),
		now:       time.Now,
	}
}

// ProcessCase adjudicates one case end to end and always returns a structured
// result; callers never see a raw error. Exceeding the pipeline deadline
// surfaces as a Failed result, never as a silent partial decision.
func (o *Orchestrator) ProcessCase(ctx context.Context, caseID string) domain.ProcessingResult {
	start := o.now()
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	ctx, span := o.tracer.Start(ctx, "ProcessCase",
		trace.WithAttributes(attribute.String("case.id", caseID)))
	defer span.End()

	res := o.run(ctx, caseID)
	res.Duration = o.now().Sub(start)
	o.metrics.ObservePipeline(res.Duration)

	if res.Success {
		span.SetAttributes(
			attribute.Bool("case.approved", res.Decision.Approved),
			attribute.Float64("case.amount", res.Decision.Amount),
		)
	} else {
		span.RecordError(errors.New(res.Err))
		span.SetStatus(codes.Error, res.Err)
	}
	return res
}

func (o *Orchestrator) run(ctx context.Context, caseID string) domain.ProcessingResult {
	res := domain.ProcessingResult{CaseID: caseID}

	c, err := o.cases.Get(ctx, caseID)
	if err != nil {
		o.metrics.IncrementProcessed("failed", unknownType)
		return o.failed(ctx, res, domain.StageGathering, fmt.Sprintf("load case: %v", err), "")
	}
	if !c.Type.Known() {
		o.metrics.IncrementProcessed("failed", unknownType)
		return o.failed(ctx, res, domain.StageDeciding, fmt.Sprintf("unknown case type %q", c.Type), c.ID)
	}

	if err := o.cases.UpdateStatus(ctx, c.ID, domain.StatusProcessing); err != nil {
		o.logger.WarnContext(ctx, "status update failed",
			"case_id", c.ID, "status", domain.StatusProcessing, "error", err)
	}

	// Gathering: fan out, wait for every fetch to settle.
	gatherStart := o.now()
	data := o.gatherer.Gather(ctx, c.CitizenID, c.Type)
	o.metrics.ObserveStage(string(domain.StageGathering), o.now().Sub(gatherStart))
	if ctx.Err() != nil {
		// Cancelled or past the deadline: partial results are discarded,
		// nothing is decided or announced.
		o.metrics.IncrementProcessed("failed", string(c.Type))
		return o.failed(ctx, res, domain.StageGathering, fmt.Sprintf("gathering aborted: %v", ctx.Err()), c.ID)
	}

	// Deciding: pure, synchronous.
	decision, err := rules.Decide(c.Type, data, o.now())
	if err != nil {
		o.metrics.IncrementProcessed("failed", string(c.Type))
		return o.failed(ctx, res, domain.StageDeciding, err.Error(), c.ID)
	}

	// Persisting: a decision is announced only once durably recorded.
	if err := o.recorder.OnDecision(ctx, c.ID, decision); err != nil {
		o.metrics.IncrementProcessed("failed", string(c.Type))
		return o.failed(ctx, res, domain.StagePersisting, fmt.Sprintf("record decision: %v", err), c.ID)
	}

	// Publishing: best-effort broadcast, escalated work-item failures.
	pubStart := o.now()
	outcome := o.publisher.Publish(ctx, c, decision, data)
	o.metrics.ObserveStage(string(domain.StagePublishing), o.now().Sub(pubStart))

	if err := o.cases.UpdateStatus(ctx, c.ID, domain.StatusDecided); err != nil {
		o.logger.WarnContext(ctx, "status update failed",
			"case_id", c.ID, "status", domain.StatusDecided, "error", err)
	}

	o.metrics.IncrementProcessed("success", string(c.Type))
	o.logger.InfoContext(ctx, "case processed",
		"case_id", c.ID,
		"case_type", c.Type,
		"approved", decision.Approved,
		"amount", decision.Amount,
		"reason", decision.Reason,
	)

	res.Success = true
	res.Stage = domain.StageDone
	res.Decision = &decision
	res.Diagnostics = outcome.Diagnostics
	return res
}

// failed finalizes a run as Failed. The status write uses a context detached
// from the (possibly expired) pipeline deadline so the terminal state still
// lands.
func (o *Orchestrator) failed(ctx context.Context, res domain.ProcessingResult, stage domain.Stage, msg, caseID string) domain.ProcessingResult {
	res.Success = false
	res.Stage = stage
	res.Err = msg

	o.logger.ErrorContext(ctx, "case processing failed",
		"case_id", res.CaseID, "stage", stage, "error", msg)

	if caseID != "" {
		statusCtx := context.WithoutCancel(ctx)
		if err := o.cases.UpdateStatus(statusCtx, caseID, domain.StatusFailed); err != nil {
			o.logger.WarnContext(ctx, "status update failed",
				"case_id", caseID, "status", domain.StatusFailed, "error", err)
		}
	}
	return res
}
