package casestore

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"caseflow/internal/domain"
	"caseflow/pkg/platform/sentinel"
)

//go:embed schema.sql
var schema string

// Postgres is the pgx-backed persistence collaborator. Decisions are recorded
// append-only so a re-run leaves an audit trail instead of overwriting.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema applies the store schema. Idempotent.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Get returns the case or a wrapped sentinel.ErrNotFound.
func (s *Postgres) Get(ctx context.Context, caseID string) (domain.Case, error) {
	var c domain.Case
	err := s.pool.QueryRow(ctx,
		`SELECT id, case_type, citizen_id, status, description
		   FROM cases WHERE id = $1`, caseID,
	).Scan(&c.ID, &c.Type, &c.CitizenID, &c.Status, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Case{}, fmt.Errorf("case %s: %w", caseID, sentinel.ErrNotFound)
	}
	if err != nil {
		return domain.Case{}, fmt.Errorf("load case %s: %w", caseID, err)
	}
	return c, nil
}

// UpdateStatus moves the case's lifecycle status.
func (s *Postgres) UpdateStatus(ctx context.Context, caseID string, status domain.CaseStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE cases SET status = $2, updated_at = now() WHERE id = $1`,
		caseID, status)
	if err != nil {
		return fmt.Errorf("update case %s status: %w", caseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("case %s: %w", caseID, sentinel.ErrNotFound)
	}
	return nil
}

// OnDecision records the decision for the case.
func (s *Postgres) OnDecision(ctx context.Context, caseID string, d domain.Decision) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO case_decisions (case_id, case_type, approved, amount, reason, decided_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		caseID, d.CaseType, d.Approved, d.Amount, d.Reason, d.DecidedAt)
	if err != nil {
		return fmt.Errorf("record decision for case %s: %w", caseID, err)
	}
	return nil
}

// Insert creates a case row. Used by tests and local seeding; case creation
// in production belongs to the surrounding system.
func (s *Postgres) Insert(ctx context.Context, c domain.Case) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO cases (id, case_type, citizen_id, status, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Type, c.CitizenID, c.Status, c.Description)
	if err != nil {
		return fmt.Errorf("insert case %s: %w", c.ID, err)
	}
	return nil
}
