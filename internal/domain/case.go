package domain

// CaseStatus tracks where a case sits in its lifecycle. The orchestrator and
// its persistence collaborator are the only writers.
type CaseStatus string

const (
	StatusReceived   CaseStatus = "received"
	StatusProcessing CaseStatus = "processing"
	StatusDecided    CaseStatus = "decided"
	StatusFailed     CaseStatus = "failed"
)

// Case is one benefits application under adjudication. Cases are created
// outside this service; the orchestrator only reads them and moves their
// status forward.
type Case struct {
	ID          string
	Type        CaseType
	CitizenID   string
	Status      CaseStatus
	Description string
}
