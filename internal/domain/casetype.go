package domain

// Source identifies one external evidence provider.
type Source string

const (
	SourceCitizen    Source = "citizen"
	SourceEmployment Source = "employment"
	SourceIncome     Source = "income"
	SourceBank       Source = "bank"
)

// CaseType is the closed enumeration of benefit types this engine
// adjudicates. Adding a variant means adding its metadata here and a rule in
// the rulebook; a test iterates every variant to keep both provably complete.
type CaseType string

const (
	CaseUnemployment   CaseType = "unemployment"
	CaseSickLeave      CaseType = "sick_leave"
	CaseWorkAssessment CaseType = "work_assessment"
	CaseDisability     CaseType = "disability"
	CaseOldAgePension  CaseType = "old_age_pension"
	CaseChildBenefit   CaseType = "child_benefit"
)

// TypeInfo carries the static metadata attached to each case type: which
// sources must answer before its rule can approve, which extra sources are
// worth fetching, whether an approval guarantees a payout, and the reason
// used on a plain approval.
type TypeInfo struct {
	Required       []Source
	Optional       []Source
	PaymentImplied bool
	ApprovalReason string
}

var typeInfo = map[CaseType]TypeInfo{
	CaseUnemployment: {
		Required:       []Source{SourceCitizen, SourceEmployment, SourceIncome, SourceBank},
		PaymentImplied: true,
		ApprovalReason: "unemployment benefit granted",
	},
	CaseSickLeave: {
		Required:       []Source{SourceCitizen, SourceEmployment},
		Optional:       []Source{SourceIncome},
		ApprovalReason: "sick-leave benefit granted",
	},
	CaseWorkAssessment: {
		Required:       []Source{SourceCitizen, SourceEmployment, SourceIncome},
		PaymentImplied: true,
		ApprovalReason: "work assessment allowance granted",
	},
	CaseDisability: {
		Required:       []Source{SourceCitizen},
		Optional:       []Source{SourceEmployment, SourceIncome},
		ApprovalReason: "standard processing",
	},
	CaseOldAgePension: {
		Required:       []Source{SourceCitizen},
		Optional:       []Source{SourceEmployment, SourceIncome},
		ApprovalReason: "standard processing",
	},
	CaseChildBenefit: {
		// Child benefit is universal: no source is required, so an
		// incomplete snapshot must never block approval.
		Optional:       []Source{SourceCitizen, SourceBank},
		PaymentImplied: true,
		ApprovalReason: "universal child benefit",
	},
}

// AllCaseTypes returns every variant in a stable order.
func AllCaseTypes() []CaseType {
	return []CaseType{
		CaseUnemployment,
		CaseSickLeave,
		CaseWorkAssessment,
		CaseDisability,
		CaseOldAgePension,
		CaseChildBenefit,
	}
}

// Known reports whether the case type is part of the closed enumeration.
func (t CaseType) Known() bool {
	_, ok := typeInfo[t]
	return ok
}

// Info returns the static metadata for the case type. Unknown types yield the
// zero TypeInfo; callers gate on Known first.
func (t CaseType) Info() TypeInfo {
	return typeInfo[t]
}

// Applicable returns the sources the aggregator should fan out over for this
// case type: required first, then optional, in declaration order.
func (t CaseType) Applicable() []Source {
	info := typeInfo[t]
	out := make([]Source, 0, len(info.Required)+len(info.Optional))
	out = append(out, info.Required...)
	out = append(out, info.Optional...)
	return out
}
