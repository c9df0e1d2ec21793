package ports

import (
	"context"
	"time"

	"caseflow/internal/domain"
)

// Raw source interfaces, one per external registry. Implementations talk
// whatever wire format their registry speaks and normalize it to domain
// records; callers only ever see a record or an error. Domain-level absence
// is sentinel.ErrNotFound, transport trouble is any other error.

// CivilRegistry answers who a citizen is and whether they are alive.
type CivilRegistry interface {
	Citizen(ctx context.Context, citizenID string, asOf time.Time) (domain.CitizenRecord, error)
}

// EmploymentRegistry lists a citizen's employment engagements.
type EmploymentRegistry interface {
	Periods(ctx context.Context, citizenID string, asOf time.Time) ([]domain.EmploymentPeriod, error)
}

// TaxRegistry returns the latest assessed annual income.
type TaxRegistry interface {
	Income(ctx context.Context, citizenID string, asOf time.Time) (domain.IncomeRecord, error)
}

// BankValidator reports whether the citizen has a valid account for payouts.
type BankValidator interface {
	Validate(ctx context.Context, citizenID string, asOf time.Time) (bool, error)
}
