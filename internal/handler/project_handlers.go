package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/handler/dto"
	"github.com/worktrackhq/worktrack/internal/middleware"
	"github.com/worktrackhq/worktrack/internal/repository"
	"github.com/worktrackhq/worktrack/internal/service"
)

const defaultPageSize = 50

// handleListProjects godoc
// @Summary List projects
// @Description Lists projects with optional search, status filters (including the virtual "overdue") and pagination.
// @Tags projects
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param status query []string false "Status filter, repeatable. One of pending-approval, ongoing, completed, paused, overdue"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ProjectListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects [get]
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	filters := repository.ProjectListFilters{
		Search:   r.URL.Query().Get("search"),
		Statuses: r.URL.Query()["status"],
		Today:    clock.Today(h.clock),
		Limit:    parseIntParam(r, "limit", defaultPageSize),
		Offset:   parseIntParam(r, "offset", 0),
	}

	projects, total, err := h.projectRepo.List(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ProjectsToListResponse(projects, total, filters.Today))
}

// handleCreateProject godoc
// @Summary Create a project
// @Description Creates a project in pending-approval status.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project to create"
// @Success 201 {object} dto.ProjectResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects [post]
func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.NewErrorResponse("INVALID_JSON", "invalid request body"))
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		respondError(w, domain.ErrInvalidDate)
		return
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		respondError(w, domain.ErrInvalidDate)
		return
	}

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), service.CreateProjectParams{
		Name:        req.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Client:      req.Client,
		Description: req.Description,
		CreatedBy:   &user.ID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ProjectToResponse(project, clock.Today(h.clock)))
}

// handleGetProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects/{id} [get]
func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrProjectNotFound)
		return
	}

	project, err := h.projectRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ProjectToResponse(project, clock.Today(h.clock)))
}

// handleSetProjectStatus godoc
// @Summary Change a project's status
// @Description Applies a status transition. Entering ongoing from pending-approval stamps the progress start; a project with no outstanding tasks is completed regardless of the requested status. Returns the display label of the status that was applied.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.SetProjectStatusRequest true "Requested status"
// @Success 200 {object} dto.StatusChangeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects/{id}/status [patch]
func (h *Handler) handleSetProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrProjectNotFound)
		return
	}

	var req dto.SetProjectStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.NewErrorResponse("INVALID_JSON", "invalid request body"))
		return
	}

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	display, err := h.projectService.SetStatus(r.Context(), id, req.Status, user, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.StatusChangeResponse{Status: display})
}

// handleListProjectAssignments godoc
// @Summary List a project's status history
// @Description Returns the append-only audit trail of status changes, oldest first.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/projects/{id}/assignments [get]
func (h *Handler) handleListProjectAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrProjectNotFound)
		return
	}

	if _, err := h.projectRepo.GetByID(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	assignments, err := h.projectAssignRepo.GetByProjectID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ProjectAssignmentsToListResponse(assignments))
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
