// Package providertest provides stub source registries for gatherer and
// orchestrator tests. Each stub returns its configured record or error after
// an optional delay and counts its calls.
package providertest

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"caseflow/internal/domain"
	"caseflow/internal/platform/config"
	"caseflow/internal/provider"
)

// Logger returns a silent logger for tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Config is a fast single-attempt provider configuration for tests.
func Config() config.Providers {
	return config.Providers{
		Timeout:     500 * time.Millisecond,
		MaxAttempts: 1,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
	}
}

// Set builds a provider set over the given stubs with the fast test config.
func Set(civil *CivilStub, emp *EmploymentStub, tax *TaxStub, bank *BankStub) *provider.Set {
	return provider.NewSet(Config(), civil, emp, tax, bank, Logger(), nil)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// CivilStub implements ports.CivilRegistry.
type CivilStub struct {
	Record domain.CitizenRecord
	Err    error
	Delay  time.Duration
	Calls  atomic.Int32
}

func (s *CivilStub) Citizen(ctx context.Context, _ string, _ time.Time) (domain.CitizenRecord, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Delay); err != nil {
		return domain.CitizenRecord{}, err
	}
	return s.Record, s.Err
}

// EmploymentStub implements ports.EmploymentRegistry.
type EmploymentStub struct {
	Records []domain.EmploymentPeriod
	Err     error
	Delay   time.Duration
	Calls   atomic.Int32
}

func (s *EmploymentStub) Periods(ctx context.Context, _ string, _ time.Time) ([]domain.EmploymentPeriod, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Delay); err != nil {
		return nil, err
	}
	return s.Records, s.Err
}

// TaxStub implements ports.TaxRegistry.
type TaxStub struct {
	Record domain.IncomeRecord
	Err    error
	Delay  time.Duration
	Calls  atomic.Int32
}

func (s *TaxStub) Income(ctx context.Context, _ string, _ time.Time) (domain.IncomeRecord, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Delay); err != nil {
		return domain.IncomeRecord{}, err
	}
	return s.Record, s.Err
}

// BankStub implements ports.BankValidator.
type BankStub struct {
	Valid bool
	Err   error
	Delay time.Duration
	Calls atomic.Int32
}

func (s *BankStub) Validate(ctx context.Context, _ string, _ time.Time) (bool, error) {
	s.Calls.Add(1)
	if err := wait(ctx, s.Delay); err != nil {
		return false, err
	}
	return s.Valid, s.Err
}
