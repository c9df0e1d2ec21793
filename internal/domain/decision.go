package domain

import "time"

// Decision is the immutable outcome of adjudicating one case. Amount is a
// currency-free monthly figure, 0 when denied.
type Decision struct {
	CaseType  CaseType  `json:"case_type"`
	Approved  bool      `json:"approved"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	DecidedAt time.Time `json:"decided_at"`
}

// Stage names the pipeline step a processing run was in when it finished.
// Within one run the stages execute strictly in order and none is re-entered.
type Stage string

const (
	StageGathering  Stage = "gathering"
	StageDeciding   Stage = "deciding"
	StagePersisting Stage = "persisting"
	StagePublishing Stage = "publishing"
	StageDone       Stage = "done"
)

// ProcessingResult is what ProcessCase hands back to its caller: always a
// structured value, never a raw error. Diagnostics carries non-fatal publish
// degradations.
type ProcessingResult struct {
	CaseID      string        `json:"case_id"`
	Success     bool          `json:"success"`
	Stage       Stage         `json:"stage"`
	Decision    *Decision     `json:"decision,omitempty"`
	Err         string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}
