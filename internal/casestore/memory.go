package casestore

import (
	"context"
	"fmt"
	"sync"

	"caseflow/internal/domain"
	"caseflow/pkg/platform/sentinel"
)

// Memory is an in-memory persistence collaborator for tests and local runs.
// It implements both caseproc ports: CaseStore and DecisionRecorder.
type Memory struct {
	mu        sync.RWMutex
	cases     map[string]domain.Case
	decisions map[string]domain.Decision
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		cases:     make(map[string]domain.Case),
		decisions: make(map[string]domain.Decision),
	}
}

// Seed inserts or replaces a case.
func (s *Memory) Seed(c domain.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID] = c
}

// Get returns the case or a wrapped sentinel.ErrNotFound.
func (s *Memory) Get(_ context.Context, caseID string) (domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[caseID]
	if !ok {
		return domain.Case{}, fmt.Errorf("case %s: %w", caseID, sentinel.ErrNotFound)
	}
	return c, nil
}

// UpdateStatus moves the case's lifecycle status.
func (s *Memory) UpdateStatus(_ context.Context, caseID string, status domain.CaseStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[caseID]
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, sentinel.ErrNotFound)
	}
	c.Status = status
	s.cases[caseID] = c
	return nil
}

// OnDecision records the decision for the case.
func (s *Memory) OnDecision(_ context.Context, caseID string, decision domain.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[caseID]; !ok {
		return fmt.Errorf("case %s: %w", caseID, sentinel.ErrNotFound)
	}
	s.decisions[caseID] = decision
	return nil
}

// Decision returns the recorded decision, if any. Test helper.
func (s *Memory) Decision(caseID string) (domain.Decision, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.decisions[caseID]
	return d, ok
}
