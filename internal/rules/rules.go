// Package rules is the decision engine: one pure rule per case type, keyed by
// the case type enumeration. No I/O, no clock reads, no mutation — identical
// inputs reproduce identical decisions.
package rules

import (
	"fmt"
	"time"

	"caseflow/internal/domain"
)

// Decision policy constants. Amounts are currency-free; annual incomes are
// divided to a monthly equivalent.
const (
	MinQualifyingIncome = 150000.0
	UnemploymentRate    = 0.60
	SickLeaveRate       = 0.80
	WorkAssessmentRate  = 0.66
	ChildBenefitAmount  = 1054.0

	ReasonDeceased = "deceased"
)

// ruleFunc adjudicates one case type against a settled snapshot. An approval
// with an empty reason picks up the case type's approval reason.
type ruleFunc func(data domain.GatheredData) (approved bool, amount float64, reason string)

// rulebook keys one rule per case type. TestRulebookCoversAllCaseTypes keeps
// this map provably complete against the enumeration.
var rulebook = map[domain.CaseType]ruleFunc{
	domain.CaseUnemployment:   decideUnemployment,
	domain.CaseSickLeave:      decideSickLeave,
	domain.CaseWorkAssessment: decideWorkAssessment,
	domain.CaseDisability:     decideStandard,
	domain.CaseOldAgePension:  decideStandard,
	domain.CaseChildBenefit:   decideChildBenefit,
}

// Decide adjudicates one case. The decision timestamp is the caller-supplied
// now, which keeps the function deterministic. The only error is an unknown
// case type — a configuration bug, not a data condition.
func Decide(caseType domain.CaseType, data domain.GatheredData, now time.Time) (domain.Decision, error) {
	rule, ok := rulebook[caseType]
	if !ok {
		return domain.Decision{}, fmt.Errorf("no rule registered for case type %q", caseType)
	}

	d := domain.Decision{CaseType: caseType, DecidedAt: now}

	// A deceased citizen is denied outright, whatever the case type.
	if data.Citizen.OK && data.Citizen.Value.Deceased {
		d.Reason = ReasonDeceased
		return d, nil
	}

	// Child benefit ignores data completeness entirely; every other type
	// denies when a required source never answered, naming that source.
	if caseType != domain.CaseChildBenefit {
		if src, found := missingRequired(caseType, data); found {
			d.Reason = fmt.Sprintf("insufficient data: %s unavailable", src)
			return d, nil
		}
	}

	approved, amount, reason := rule(data)
	if approved && reason == "" {
		reason = caseType.Info().ApprovalReason
	}
	d.Approved = approved
	d.Amount = amount
	d.Reason = reason
	return d, nil
}

// missingRequired returns the first required source that did not answer.
func missingRequired(caseType domain.CaseType, data domain.GatheredData) (domain.Source, bool) {
	for _, s := range caseType.Info().Required {
		if ok, _ := data.SourceOK(s); !ok {
			return s, true
		}
	}
	return "", false
}

// decideUnemployment requires employment history, a qualifying income and a
// valid payout account. Amount is 60% of the monthly income equivalent.
func decideUnemployment(data domain.GatheredData) (bool, float64, string) {
	if len(data.Employment.Value) == 0 {
		return false, 0, "no employment history registered"
	}
	if data.Income.Value.AnnualGross < MinQualifyingIncome {
		return false, 0, "income below minimum requirement"
	}
	if !data.BankValid.Value {
		return false, 0, "bank account could not be validated"
	}
	return true, data.Income.Value.AnnualGross * UnemploymentRate / 12, ""
}

// decideSickLeave requires a currently running employment. Income is
// optional: 80% of the monthly equivalent when known, otherwise approval
// stands with amount 0 and the payout is settled later.
func decideSickLeave(data domain.GatheredData) (bool, float64, string) {
	if !hasOpenEmployment(data.Employment.Value) {
		return false, 0, "no current employment registered"
	}
	amount := 0.0
	if data.Income.OK {
		amount = data.Income.Value.AnnualGross * SickLeaveRate / 12
	}
	return true, amount, ""
}

// decideWorkAssessment requires employment history and assessed income.
// Amount is 66% of the monthly income equivalent.
func decideWorkAssessment(data domain.GatheredData) (bool, float64, string) {
	if len(data.Employment.Value) == 0 {
		return false, 0, "no employment history registered"
	}
	if data.Income.Value.AnnualGross <= 0 {
		return false, 0, "no assessed income on record"
	}
	return true, data.Income.Value.AnnualGross * WorkAssessmentRate / 12, ""
}

// decideChildBenefit approves unconditionally with the fixed amount.
func decideChildBenefit(domain.GatheredData) (bool, float64, string) {
	return true, ChildBenefitAmount, ""
}

// decideStandard approves with no payout; the case proceeds through manual
// handling downstream.
func decideStandard(domain.GatheredData) (bool, float64, string) {
	return true, 0, ""
}

func hasOpenEmployment(periods []domain.EmploymentPeriod) bool {
	for _, p := range periods {
		if p.End == nil {
			return true
		}
	}
	return false
}
