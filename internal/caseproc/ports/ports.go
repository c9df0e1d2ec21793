package ports

import (
	"context"

	"caseflow/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

// CaseStore is the persistence collaborator's read-and-status side. The
// orchestrator never creates cases; it loads them and moves their lifecycle
// status forward.
type CaseStore interface {
	Get(ctx context.Context, caseID string) (domain.Case, error)
	UpdateStatus(ctx context.Context, caseID string, status domain.CaseStatus) error
}

// DecisionRecorder durably records the decision. It is invoked exactly once,
// synchronously, before anything is published: a decision must never be
// announced downstream unless it was recorded first.
type DecisionRecorder interface {
	OnDecision(ctx context.Context, caseID string, decision domain.Decision) error
}
