package provider

import (
	"log/slog"

	"caseflow/internal/domain"
	"caseflow/internal/platform/config"
	"caseflow/internal/provider/metrics"
	"caseflow/internal/provider/ports"
)

// Set bundles the four provider clients the aggregator fans out over.
type Set struct {
	Citizen    *Client[domain.CitizenRecord]
	Employment *Client[[]domain.EmploymentPeriod]
	Income     *Client[domain.IncomeRecord]
	Bank       *Client[bool]
}

// NewSet wires one client per raw source with a shared timeout and retry
// policy. Each source keeps its own circuit breaker.
func NewSet(
	cfg config.Providers,
	civil ports.CivilRegistry,
	employment ports.EmploymentRegistry,
	tax ports.TaxRegistry,
	bank ports.BankValidator,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Set {
	policy := RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		Multiplier:  cfg.Multiplier,
	}
	return &Set{
		Citizen:    NewClient(domain.SourceCitizen, civil.Citizen, cfg.Timeout, policy, logger, m),
		Employment: NewClient(domain.SourceEmployment, employment.Periods, cfg.Timeout, policy, logger, m),
		Income:     NewClient(domain.SourceIncome, tax.Income, cfg.Timeout, policy, logger, m),
		Bank:       NewClient(domain.SourceBank, bank.Validate, cfg.Timeout, policy, logger, m),
	}
}
