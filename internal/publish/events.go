package publish

import (
	"time"

	"github.com/google/uuid"

	"caseflow/internal/domain"
)

// Event and task payload builders. Broadcast events and work items never
// carry the raw citizen identifier, only the masked form.

func decidedEvent(c domain.Case, d domain.Decision, data domain.GatheredData) map[string]any {
	return map[string]any{
		"event_id":      uuid.NewString(),
		"event_type":    "case.decided",
		"case_id":       c.ID,
		"case_type":     string(d.CaseType),
		"citizen_ref":   domain.MaskCitizenID(c.CitizenID),
		"approved":      d.Approved,
		"reason":        d.Reason,
		"amount":        d.Amount,
		"data_complete": data.Complete,
		"decided_at":    d.DecidedAt.UTC().Format(time.RFC3339),
	}
}

func paymentTask(c domain.Case, d domain.Decision) map[string]any {
	return map[string]any{
		"task_id":     uuid.NewString(),
		"task_type":   "payment.disburse",
		"case_id":     c.ID,
		"case_type":   string(d.CaseType),
		"citizen_ref": domain.MaskCitizenID(c.CitizenID),
		"amount":      d.Amount,
		"decided_at":  d.DecidedAt.UTC().Format(time.RFC3339),
	}
}

func documentTask(c domain.Case, d domain.Decision) map[string]any {
	template := "rejection_letter"
	if d.Approved {
		template = "approval_letter"
	}
	return map[string]any{
		"task_id":     uuid.NewString(),
		"task_type":   "document.generate",
		"template":    template,
		"case_id":     c.ID,
		"case_type":   string(d.CaseType),
		"citizen_ref": domain.MaskCitizenID(c.CitizenID),
		"approved":    d.Approved,
		"reason":      d.Reason,
	}
}

// paymentFailureEvent is the compensating alert for a payment work item that
// could not be enqueued after the decision was already recorded.
func paymentFailureEvent(c domain.Case, d domain.Decision, cause error) map[string]any {
	return map[string]any{
		"event_id":    uuid.NewString(),
		"event_type":  "case.payment_enqueue_failed",
		"severity":    "critical",
		"case_id":     c.ID,
		"case_type":   string(d.CaseType),
		"citizen_ref": domain.MaskCitizenID(c.CitizenID),
		"amount":      d.Amount,
		"error":       cause.Error(),
	}
}
