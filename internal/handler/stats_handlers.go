package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/handler/dto"
)

// handleTaskStats godoc
// @Summary Task statistics
// @Description Returns task counts and the completion rate, computed at request time. Pass project_id to scope to one project.
// @Tags stats
// @Produce json
// @Param project_id query string false "Scope to one project"
// @Success 200 {object} dto.TaskStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks-stats [get]
func (h *Handler) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	var projectID *string
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		if _, err := uuid.Parse(raw); err != nil {
			respondError(w, domain.ErrProjectNotFound)
			return
		}
		projectID = &raw
	}

	stats, err := h.statsService.TaskStats(r.Context(), projectID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TaskStatsToResponse(stats))
}

// handleProjectStats godoc
// @Summary Project statistics
// @Description Returns project counts by status plus the derived overdue bucket, computed at request time.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.ProjectStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects-stats [get]
func (h *Handler) handleProjectStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.ProjectStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ProjectStatsToResponse(stats))
}
