package domain

import "time"

// Result is the settled outcome of one provider fetch. Unavailability is
// data, not an error: nothing past the provider client boundary ever throws.
type Result[T any] struct {
	Value  T
	OK     bool
	Reason string // set when !OK
}

// Ok wraps a successfully fetched value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v, OK: true}
}

// Unavailable marks a source that could not answer, with the reason why.
func Unavailable[T any](reason string) Result[T] {
	return Result[T]{Reason: reason}
}

// CitizenRecord is the civil-registry view of one citizen.
type CitizenRecord struct {
	NationalID  string
	FullName    string
	DateOfBirth string // YYYY-MM-DD
	Deceased    bool
}

// EmploymentPeriod is one employment engagement. A nil End means the
// engagement is still running.
type EmploymentPeriod struct {
	Employer string
	Start    time.Time
	End      *time.Time
}

// IncomeRecord is the latest assessed annual gross income.
type IncomeRecord struct {
	Year        int
	AnnualGross float64
}

// GatheredData is the snapshot of all provider fetches for one case, taken
// after every launched fetch has settled. Complete is true only when every
// source the case type requires answered Ok.
type GatheredData struct {
	Citizen    Result[CitizenRecord]
	Employment Result[[]EmploymentPeriod]
	Income     Result[IncomeRecord]
	BankValid  Result[bool]
	Complete   bool
}

// SourceOK reports whether the given source settled successfully, along with
// the unavailability reason when it did not.
func (g GatheredData) SourceOK(s Source) (bool, string) {
	switch s {
	case SourceCitizen:
		return g.Citizen.OK, g.Citizen.Reason
	case SourceEmployment:
		return g.Employment.OK, g.Employment.Reason
	case SourceIncome:
		return g.Income.OK, g.Income.Reason
	case SourceBank:
		return g.BankValid.OK, g.BankValid.Reason
	}
	return false, "unknown source"
}
