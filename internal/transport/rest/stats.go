package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	TaskTotal(ctx context.Context, taskID uuid.UUID) (int64, error)
	ProjectTotal(ctx context.Context, projectID uuid.UUID) (int64, error)
	TodayTotal(ctx context.Context) (int64, error)
	Summary(ctx context.Context) (*stats.Summary, error)
}

// StatsHandler serves aggregation endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type totalResponse struct {
	TotalMs int64 `json:"totalMs"`
}

type projectSummaryResponse struct {
	Project projectResponse `json:"project"`
	TotalMs int64           `json:"totalMs"`
}

type summaryResponse struct {
	Projects []projectSummaryResponse `json:"projects"`
	TodayMs  int64                    `json:"todayMs"`
}

// TaskTotal handles GET /stats/tasks/{id}/total.
func (h *StatsHandler) TaskTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	total, err := h.svc.TaskTotal(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{TotalMs: total})
}

// ProjectTotal handles GET /stats/projects/{id}/total.
func (h *StatsHandler) ProjectTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	total, err := h.svc.ProjectTotal(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{TotalMs: total})
}

// TodayTotal handles GET /stats/today.
func (h *StatsHandler) TodayTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TodayTotal(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{TotalMs: total})
}

// Summary handles GET /stats/summary.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	projects := make([]projectSummaryResponse, 0, len(summary.Projects))
	for _, ps := range summary.Projects {
		projects = append(projects, projectSummaryResponse{
			Project: toProjectResponse(ps.Project),
			TotalMs: ps.TotalMs,
		})
	}
	writeJSON(w, http.StatusOK, summaryResponse{Projects: projects, TodayMs: summary.TodayMs})
}

func (h *StatsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}
