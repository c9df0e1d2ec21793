package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseflow/internal/domain"
)

var decidedAt = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func openEmployment() []domain.EmploymentPeriod {
	return []domain.EmploymentPeriod{
		{Employer: "Acme", Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func closedEmployment() []domain.EmploymentPeriod {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	return []domain.EmploymentPeriod{
		{Employer: "Acme", Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), End: &end},
	}
}

// fullData is a snapshot where every source answered favorably.
func fullData(income float64) domain.GatheredData {
	data := domain.GatheredData{
		Citizen:    domain.Ok(domain.CitizenRecord{NationalID: "123", FullName: "Kari Nordmann"}),
		Employment: domain.Ok(openEmployment()),
		Income:     domain.Ok(domain.IncomeRecord{Year: 2024, AnnualGross: income}),
		BankValid:  domain.Ok(true),
	}
	data.Complete = true
	return data
}

func TestRulebookCoversAllCaseTypes(t *testing.T) {
	for _, ct := range domain.AllCaseTypes() {
		_, registered := rulebook[ct]
		assert.True(t, registered, "case type %s has no rule", ct)

		_, err := Decide(ct, fullData(300000), decidedAt)
		assert.NoError(t, err, "case type %s", ct)
	}
}

func TestDecide_UnknownCaseType(t *testing.T) {
	_, err := Decide(domain.CaseType("housing_benefit"), fullData(300000), decidedAt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "housing_benefit")
}

func TestDecide_DeceasedDeniesEveryType(t *testing.T) {
	for _, ct := range domain.AllCaseTypes() {
		data := fullData(300000)
		data.Citizen = domain.Ok(domain.CitizenRecord{NationalID: "123", Deceased: true})

		d, err := Decide(ct, data, decidedAt)
		require.NoError(t, err)
		assert.False(t, d.Approved, "case type %s", ct)
		assert.Equal(t, ReasonDeceased, d.Reason, "case type %s", ct)
		assert.Zero(t, d.Amount, "case type %s", ct)
	}
}

func TestDecide_Unemployment_Approved(t *testing.T) {
	d, err := Decide(domain.CaseUnemployment, fullData(300000), decidedAt)
	require.NoError(t, err)

	assert.True(t, d.Approved)
	assert.Equal(t, 15000.0, d.Amount) // 300000 * 0.6 / 12
	assert.Equal(t, "unemployment benefit granted", d.Reason)
}

func TestDecide_Unemployment_NoEmploymentHistory(t *testing.T) {
	data := fullData(0)
	data.Employment = domain.Ok([]domain.EmploymentPeriod{})

	d, err := Decide(domain.CaseUnemployment, data, decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Zero(t, d.Amount)
	assert.Contains(t, d.Reason, "employment")
}

func TestDecide_Unemployment_IncomeBelowMinimum(t *testing.T) {
	d, err := Decide(domain.CaseUnemployment, fullData(100000), decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Contains(t, d.Reason, "income")
}

func TestDecide_Unemployment_InvalidBankAccount(t *testing.T) {
	data := fullData(300000)
	data.BankValid = domain.Ok(false)

	d, err := Decide(domain.CaseUnemployment, data, decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Contains(t, d.Reason, "bank")
}

func TestDecide_Unemployment_MissingRequiredSourceNamed(t *testing.T) {
	data := fullData(300000)
	data.BankValid = domain.Unavailable[bool]("validator timeout")
	data.Complete = false

	d, err := Decide(domain.CaseUnemployment, data, decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Equal(t, "insufficient data: bank unavailable", d.Reason)
}

func TestDecide_SickLeave_CurrentEmployment(t *testing.T) {
	d, err := Decide(domain.CaseSickLeave, fullData(300000), decidedAt)
	require.NoError(t, err)

	assert.True(t, d.Approved)
	assert.Equal(t, 20000.0, d.Amount) // 300000 * 0.8 / 12
}

func TestDecide_SickLeave_NoCurrentEmployment(t *testing.T) {
	data := fullData(300000)
	data.Employment = domain.Ok(closedEmployment())

	d, err := Decide(domain.CaseSickLeave, data, decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Contains(t, d.Reason, "employment")
}

func TestDecide_SickLeave_UnknownIncomeStillApproves(t *testing.T) {
	data := fullData(0)
	data.Income = domain.Unavailable[domain.IncomeRecord]("tax registry down")
	// Income is optional for sick leave, so the snapshot stays complete.

	d, err := Decide(domain.CaseSickLeave, data, decidedAt)
	require.NoError(t, err)

	assert.True(t, d.Approved)
	assert.Zero(t, d.Amount)
}

func TestDecide_WorkAssessment(t *testing.T) {
	d, err := Decide(domain.CaseWorkAssessment, fullData(360000), decidedAt)
	require.NoError(t, err)

	assert.True(t, d.Approved)
	assert.Equal(t, 19800.0, d.Amount) // 360000 * 0.66 / 12
}

func TestDecide_WorkAssessment_MissingEmploymentSource(t *testing.T) {
	data := fullData(360000)
	data.Employment = domain.Unavailable[[]domain.EmploymentPeriod]("registry timeout")
	data.Complete = false

	d, err := Decide(domain.CaseWorkAssessment, data, decidedAt)
	require.NoError(t, err)

	assert.False(t, d.Approved)
	assert.Equal(t, "insufficient data: employment unavailable", d.Reason)
}

func TestDecide_ChildBenefit_NoDataAtAll(t *testing.T) {
	data := domain.GatheredData{
		Citizen:    domain.Unavailable[domain.CitizenRecord]("registry down"),
		Employment: domain.Unavailable[[]domain.EmploymentPeriod]("not requested"),
		Income:     domain.Unavailable[domain.IncomeRecord]("not requested"),
		BankValid:  domain.Unavailable[bool]("validator down"),
		Complete:   false,
	}

	d, err := Decide(domain.CaseChildBenefit, data, decidedAt)
	require.NoError(t, err)

	assert.True(t, d.Approved)
	assert.Equal(t, ChildBenefitAmount, d.Amount)
	assert.Equal(t, "universal child benefit", d.Reason)
}

func TestDecide_StandardTypes(t *testing.T) {
	for _, ct := range []domain.CaseType{domain.CaseDisability, domain.CaseOldAgePension} {
		d, err := Decide(ct, fullData(300000), decidedAt)
		require.NoError(t, err)

		assert.True(t, d.Approved, "case type %s", ct)
		assert.Zero(t, d.Amount, "case type %s", ct)
		assert.Equal(t, "standard processing", d.Reason, "case type %s", ct)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	data := fullData(300000)
	for _, ct := range domain.AllCaseTypes() {
		first, err := Decide(ct, data, decidedAt)
		require.NoError(t, err)
		second, err := Decide(ct, data, decidedAt)
		require.NoError(t, err)

		assert.Equal(t, first, second, "case type %s", ct)
	}
}

// TestDecide_PaymentImpliesAmount sweeps synthetic snapshots across every
// case type: whenever a payment-implied type approves, the amount must be
// positive, and every denial must carry a reason.
func TestDecide_PaymentImpliesAmount(t *testing.T) {
	citizens := []domain.Result[domain.CitizenRecord]{
		domain.Ok(domain.CitizenRecord{NationalID: "123"}),
		domain.Ok(domain.CitizenRecord{NationalID: "123", Deceased: true}),
		domain.Unavailable[domain.CitizenRecord]("down"),
	}
	employments := []domain.Result[[]domain.EmploymentPeriod]{
		domain.Ok(openEmployment()),
		domain.Ok(closedEmployment()),
		domain.Ok([]domain.EmploymentPeriod{}),
		domain.Unavailable[[]domain.EmploymentPeriod]("down"),
	}
	incomes := []domain.Result[domain.IncomeRecord]{
		domain.Ok(domain.IncomeRecord{AnnualGross: 300000}),
		domain.Ok(domain.IncomeRecord{AnnualGross: 0}),
		domain.Unavailable[domain.IncomeRecord]("down"),
	}
	banks := []domain.Result[bool]{
		domain.Ok(true),
		domain.Ok(false),
		domain.Unavailable[bool]("down"),
	}

	for _, ct := range domain.AllCaseTypes() {
		for _, cit := range citizens {
			for _, emp := range employments {
				for _, inc := range incomes {
					for _, bank := range banks {
						data := domain.GatheredData{
							Citizen: cit, Employment: emp, Income: inc, BankValid: bank,
						}
						data.Complete = allRequiredOK(ct, data)

						d, err := Decide(ct, data, decidedAt)
						require.NoError(t, err)

						if d.Approved && ct.Info().PaymentImplied {
							assert.Greater(t, d.Amount, 0.0,
								"approved %s must carry a payout", ct)
						}
						if !d.Approved {
							assert.NotEmpty(t, d.Reason,
								"denied %s must carry a reason", ct)
						}
					}
				}
			}
		}
	}
}

func allRequiredOK(ct domain.CaseType, data domain.GatheredData) bool {
	for _, s := range ct.Info().Required {
		if ok, _ := data.SourceOK(s); !ok {
			return false
		}
	}
	return true
}
