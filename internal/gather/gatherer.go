// Package gather assembles the evidence snapshot for one case by fanning out
// over the provider clients its case type cares about.
package gather

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"caseflow/internal/domain"
	"caseflow/internal/provider"
)

// Gatherer runs the fan-out/fan-in barrier: every launched fetch settles
// before Gather returns. It never errors and never returns early; provider
// trouble arrives as Unavailable slots inside the snapshot.
type Gatherer struct {
	providers *provider.Set
	logger    *slog.Logger
}

// New builds a Gatherer over the given provider set.
func New(providers *provider.Set, logger *slog.Logger) *Gatherer {
	return &Gatherer{providers: providers, logger: logger}
}

// Gather fetches all applicable sources for the case type concurrently and
// waits for every one of them to settle. Complete is true iff every source
// the case type requires answered Ok. Sources a case type never asks for are
// left Unavailable("not requested") so rules cannot mistake them for data.
func (g *Gatherer) Gather(ctx context.Context, citizenID string, caseType domain.CaseType) domain.GatheredData {
	asOf := time.Now()
	applicable := caseType.Applicable()

	data := domain.GatheredData{
		Citizen:    domain.Unavailable[domain.CitizenRecord]("not requested"),
		Employment: domain.Unavailable[[]domain.EmploymentPeriod]("not requested"),
		Income:     domain.Unavailable[domain.IncomeRecord]("not requested"),
		BankValid:  domain.Unavailable[bool]("not requested"),
	}

	// Each goroutine owns exactly one result slot, so the Wait barrier is the
	// only synchronization needed. Fetches never fail the group: a provider
	// failure is data, and one source's trouble must not cancel its siblings.
	var grp errgroup.Group
	if slices.Contains(applicable, domain.SourceCitizen) {
		grp.Go(func() error {
			data.Citizen = g.providers.Citizen.Fetch(ctx, citizenID, asOf)
			return nil
		})
	}
	if slices.Contains(applicable, domain.SourceEmployment) {
		grp.Go(func() error {
			data.Employment = g.providers.Employment.Fetch(ctx, citizenID, asOf)
			return nil
		})
	}
	if slices.Contains(applicable, domain.SourceIncome) {
		grp.Go(func() error {
			data.Income = g.providers.Income.Fetch(ctx, citizenID, asOf)
			return nil
		})
	}
	if slices.Contains(applicable, domain.SourceBank) {
		grp.Go(func() error {
			data.BankValid = g.providers.Bank.Fetch(ctx, citizenID, asOf)
			return nil
		})
	}
	_ = grp.Wait()

	data.Complete = complete(caseType, data)

	g.logger.DebugContext(ctx, "evidence gathered",
		"case_type", caseType,
		"sources", len(applicable),
		"complete", data.Complete,
	)
	return data
}

func complete(caseType domain.CaseType, data domain.GatheredData) bool {
	for _, s := range caseType.Info().Required {
		if ok, _ := data.SourceOK(s); !ok {
			return false
		}
	}
	return true
}
