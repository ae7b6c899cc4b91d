package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/handler/dto"
	"github.com/worktrackhq/worktrack/internal/middleware"
	"github.com/worktrackhq/worktrack/internal/repository"
	"github.com/worktrackhq/worktrack/internal/service"

	_ "github.com/worktrackhq/worktrack/docs" // Import generated docs
)

// Handler holds the services and repositories backing the HTTP API.
type Handler struct {
	projectService    *service.ProjectService
	taskService       *service.TaskService
	statsService      *service.StatsService
	projectRepo       *repository.ProjectRepository
	taskRepo          *repository.TaskRepository
	projectAssignRepo *repository.ProjectAssignmentRepository
	taskAssignRepo    *repository.TaskAssignmentRepository
	auth              *middleware.AuthMiddleware
	clock             clock.Clock
}

// New creates a Handler with all dependencies wired against the given pool.
func New(pool *pgxpool.Pool, clk clock.Clock, jwtSecret []byte) *Handler {
	projectRepo := repository.NewProjectRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	projectAssignRepo := repository.NewProjectAssignmentRepository(pool)
	taskAssignRepo := repository.NewTaskAssignmentRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	return &Handler{
		projectService:    service.NewProjectService(pool, projectRepo, taskRepo, projectAssignRepo, clk),
		taskService:       service.NewTaskService(pool, taskRepo, projectRepo, taskAssignRepo, projectAssignRepo, clk),
		statsService:      service.NewStatsService(taskRepo, projectRepo, clk),
		projectRepo:       projectRepo,
		taskRepo:          taskRepo,
		projectAssignRepo: projectAssignRepo,
		taskAssignRepo:    taskAssignRepo,
		auth:              middleware.NewAuthMiddleware(userRepo, jwtSecret),
		clock:             clk,
	}
}

// RegisterRoutes registers all HTTP routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/projects", h.handleListProjects)
	api.HandleFunc("POST /api/v1/projects", h.handleCreateProject)
	api.HandleFunc("GET /api/v1/projects/{id}", h.handleGetProject)
	api.HandleFunc("PATCH /api/v1/projects/{id}/status", h.handleSetProjectStatus)
	api.HandleFunc("GET /api/v1/projects/{id}/assignments", h.handleListProjectAssignments)
	api.HandleFunc("GET /api/v1/projects-stats", h.handleProjectStats)

	api.HandleFunc("GET /api/v1/tasks", h.handleListTasks)
	api.HandleFunc("POST /api/v1/tasks", h.handleCreateTask)
	api.HandleFunc("GET /api/v1/tasks/{id}", h.handleGetTask)
	api.HandleFunc("PATCH /api/v1/tasks/{id}/status", h.handleToggleTaskStatus)
	api.HandleFunc("GET /api/v1/tasks/{id}/assignments", h.handleListTaskAssignments)
	api.HandleFunc("GET /api/v1/tasks-stats", h.handleTaskStats)

	mux.Handle("/api/v1/", h.auth.Authenticate(api))
}

// handleHealth godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractID validates and returns the {id} path segment.
func extractID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}
