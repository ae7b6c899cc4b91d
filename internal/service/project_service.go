package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/metrics"
	"github.com/worktrackhq/worktrack/internal/repository"
)

// ProjectService coordinates project lifecycle transitions.
type ProjectService struct {
	pool              *pgxpool.Pool
	projectRepo       *repository.ProjectRepository
	taskRepo          *repository.TaskRepository
	projectAssignRepo *repository.ProjectAssignmentRepository
	clock             clock.Clock
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	pool *pgxpool.Pool,
	projectRepo *repository.ProjectRepository,
	taskRepo *repository.TaskRepository,
	projectAssignRepo *repository.ProjectAssignmentRepository,
	clk clock.Clock,
) *ProjectService {
	return &ProjectService{
		pool:              pool,
		projectRepo:       projectRepo,
		taskRepo:          taskRepo,
		projectAssignRepo: projectAssignRepo,
		clock:             clk,
	}
}

// CreateProjectParams holds the validated input for creating a project.
type CreateProjectParams struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Client      *string
	Description *string
	CreatedBy   *string
}

// CreateProject creates a new project in pending-approval status.
func (s *ProjectService) CreateProject(ctx context.Context, params CreateProjectParams) (*domain.Project, error) {
	if params.Name == "" {
		return nil, domain.ErrNameRequired
	}

	project := &domain.Project{
		Name:        params.Name,
		Status:      domain.ProjectStatusPendingApproval,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Budget:      params.Budget,
		Client:      params.Client,
		Description: params.Description,
		CreatedBy:   params.CreatedBy,
	}

	if _, err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	slog.Info("project created",
		"project_id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// SetStatus transitions a project to the requested status, subject to two
// rules applied in order:
//
//   - Progress start: moving pending-approval -> ongoing stamps
//     progress_started once; later re-entries into ongoing never re-stamp
//     because the prior status is no longer pending-approval.
//   - Completion override: when the project has no outstanding tasks the
//     final status is forced to completed, whatever was requested.
//
// One ProjectAssignment audit row records the final (possibly overridden)
// status in the same transaction. Returns the display label of the final
// status.
func (s *ProjectService) SetStatus(
	ctx context.Context,
	projectID string,
	requestedStatus string,
	actor *domain.User,
	notes string,
) (string, error) {
	if requestedStatus == "" {
		return "", domain.ErrStatusRequired
	}
	requested := domain.ProjectStatus(requestedStatus)
	if !requested.IsValid() {
		return "", fmt.Errorf("%w: %q is not a project status", domain.ErrInvalidStatus, requestedStatus)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	project, err := s.projectRepo.GetByIDForUpdate(ctx, tx, projectID)
	if err != nil {
		return "", err
	}

	var progressStarted *time.Time
	if requested == domain.ProjectStatusOngoing && project.Status == domain.ProjectStatusPendingApproval {
		now := s.clock.Now()
		progressStarted = &now
	}

	finalStatus := requested
	outstanding, err := s.taskRepo.CountOutstanding(ctx, tx, projectID)
	if err != nil {
		return "", err
	}
	if outstanding == 0 {
		finalStatus = domain.ProjectStatusCompleted
	}

	if err := s.projectRepo.UpdateStatus(ctx, tx, projectID, project.Status, finalStatus, progressStarted); err != nil {
		return "", err
	}

	assignment := &domain.ProjectAssignment{
		ProjectID: projectID,
		Status:    finalStatus,
		Notes:     notes,
	}
	if actor != nil {
		assignment.AssignedBy = &actor.ID
		assignment.AssignedByEmployee = actor.IsEmployeeLinked()
	}
	if err := s.projectAssignRepo.Create(ctx, tx, assignment); err != nil {
		return "", fmt.Errorf("create project assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}

	metrics.RecordTransition("project", string(finalStatus))

	slog.Info("project status changed",
		"project_id", projectID,
		"old_status", project.Status,
		"requested_status", requested,
		"final_status", finalStatus,
		"assignment_id", assignment.ID,
	)

	return finalStatus.Display(), nil
}
