// Package httptransport is the thin HTTP layer that triggers case
// processing. The full case API (CRUD, auth, gateway rules) lives outside
// this service; only the orchestration entry point is exposed here.
package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"caseflow/internal/domain"
)

// CaseProcessor is the orchestration entry point the handler delegates to.
type CaseProcessor interface {
	ProcessCase(ctx context.Context, caseID string) domain.ProcessingResult
}

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

// Handler exposes the orchestration trigger and operational endpoints.
type Handler struct {
	processor CaseProcessor
	health    map[string]HealthCheck
	logger    *slog.Logger
}

// NewHandler builds the handler. health maps dependency names to probes.
func NewHandler(processor CaseProcessor, health map[string]HealthCheck, logger *slog.Logger) *Handler {
	return &Handler{processor: processor, health: health, logger: logger}
}

// NewRouter wires all public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/cases/{caseID}/process", h.handleProcess)
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing case id"})
		return
	}

	result := h.processor.ProcessCase(r.Context(), caseID)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := http.StatusOK
	checks := make(map[string]string, len(h.health))
	for name, probe := range h.health {
		if err := probe(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = err.Error()
			continue
		}
		checks[name] = "ok"
	}
	writeJSON(w, status, checks)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
