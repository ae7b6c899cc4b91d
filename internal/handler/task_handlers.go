package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/handler/dto"
	"github.com/worktrackhq/worktrack/internal/middleware"
	"github.com/worktrackhq/worktrack/internal/repository"
	"github.com/worktrackhq/worktrack/internal/service"
)

// handleListTasks godoc
// @Summary List tasks
// @Description Lists tasks with optional search, status filters (including the virtual "overdue"), priority filters, project scoping and pagination.
// @Tags tasks
// @Produce json
// @Param search query string false "Case-insensitive title search"
// @Param status query []string false "Status filter, repeatable. One of completed, incomplete, overdue"
// @Param priority query []string false "Priority filter, repeatable. One of low, medium, high"
// @Param project_id query string false "Scope to one project"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TaskListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filters := repository.TaskListFilters{
		Search:     r.URL.Query().Get("search"),
		Statuses:   r.URL.Query()["status"],
		Priorities: r.URL.Query()["priority"],
		Today:      clock.Today(h.clock),
		Limit:      parseIntParam(r, "limit", defaultPageSize),
		Offset:     parseIntParam(r, "offset", 0),
	}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		if _, err := uuid.Parse(projectID); err != nil {
			respondError(w, domain.ErrProjectNotFound)
			return
		}
		filters.ProjectID = &projectID
	}

	tasks, total, err := h.taskRepo.List(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TasksToListResponse(tasks, total, filters.Today))
}

// handleCreateTask godoc
// @Summary Create a task
// @Description Creates a task in incomplete status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task to create"
// @Success 201 {object} dto.TaskResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.NewErrorResponse("INVALID_JSON", "invalid request body"))
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		respondError(w, domain.ErrInvalidDate)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.TaskToResponse(task, clock.Today(h.clock)))
}

// handleGetTask godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrTaskNotFound)
		return
	}

	task, err := h.taskRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TaskToResponse(task, clock.Today(h.clock)))
}

// handleToggleTaskStatus godoc
// @Summary Toggle a task's status
// @Description Flips the task between completed and incomplete, records an audit entry, and cascades into the owning project when appropriate. Returns the display label of the resulting status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.ToggleTaskStatusRequest false "Optional notes"
// @Success 200 {object} dto.StatusChangeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks/{id}/status [patch]
func (h *Handler) handleToggleTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrTaskNotFound)
		return
	}

	// The body is optional; an absent one decodes to io.EOF regardless of
	// whether the request carried a Content-Length.
	var req dto.ToggleTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, dto.NewErrorResponse("INVALID_JSON", "invalid request body"))
		return
	}

	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	display, err := h.taskService.ToggleStatus(r.Context(), id, user, req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.StatusChangeResponse{Status: display})
}

// handleListTaskAssignments godoc
// @Summary List a task's status history
// @Description Returns the append-only audit trail of status changes, oldest first.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tasks/{id}/assignments [get]
func (h *Handler) handleListTaskAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := extractID(r)
	if !ok {
		respondError(w, domain.ErrTaskNotFound)
		return
	}

	if _, err := h.taskRepo.GetByID(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	assignments, err := h.taskAssignRepo.GetByTaskID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TaskAssignmentsToListResponse(assignments))
}
