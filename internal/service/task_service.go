package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/metrics"
	"github.com/worktrackhq/worktrack/internal/repository"
)

// TaskService coordinates task lifecycle transitions and the cascade into
// the owning project.
type TaskService struct {
	pool              *pgxpool.Pool
	taskRepo          *repository.TaskRepository
	projectRepo       *repository.ProjectRepository
	taskAssignRepo    *repository.TaskAssignmentRepository
	projectAssignRepo *repository.ProjectAssignmentRepository
	clock             clock.Clock
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	taskAssignRepo *repository.TaskAssignmentRepository,
	projectAssignRepo *repository.ProjectAssignmentRepository,
	clk clock.Clock,
) *TaskService {
	return &TaskService{
		pool:              pool,
		taskRepo:          taskRepo,
		projectRepo:       projectRepo,
		taskAssignRepo:    taskAssignRepo,
		projectAssignRepo: projectAssignRepo,
		clock:             clk,
	}
}

// CreateTaskParams holds the validated input for creating a task.
type CreateTaskParams struct {
	Title       string
	Description *string
	Department  string
	Priority    domain.TaskPriority
	DueDate     time.Time
	ProjectID   *string
	AssignedTo  []string
}

// CreateTask creates a new task in incomplete status.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	if params.Title == "" {
		return nil, domain.ErrTitleRequired
	}
	if params.Priority != "" && !params.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task := &domain.Task{
		Title:       params.Title,
		Description: params.Description,
		Department:  params.Department,
		Status:      domain.TaskStatusIncomplete,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		ProjectID:   params.ProjectID,
		AssignedTo:  params.AssignedTo,
	}

	if _, err := s.taskRepo.Create(ctx, tx, task); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("task created",
		"task_id", task.ID,
		"title", task.Title,
	)

	return task, nil
}

// ToggleStatus flips a task between incomplete and completed, appends a
// TaskAssignment audit row, and cascades into the owning project when the
// toggle closes its last outstanding task or reopens a completed project.
// Everything happens in one transaction: either the task flip, its audit
// row, and any project cascade all commit, or none of them do.
// Returns the display label of the resulting task status.
func (s *TaskService) ToggleStatus(
	ctx context.Context,
	taskID string,
	actor *domain.User,
	notes string,
) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return "", err
	}

	oldStatus := task.Status
	var newStatus domain.TaskStatus
	var completedAt *time.Time
	if oldStatus == domain.TaskStatusCompleted {
		newStatus = domain.TaskStatusIncomplete
	} else {
		newStatus = domain.TaskStatusCompleted
		now := s.clock.Now()
		completedAt = &now
	}

	if err := s.taskRepo.UpdateStatus(ctx, tx, taskID, oldStatus, newStatus, completedAt); err != nil {
		return "", err
	}

	assignment := &domain.TaskAssignment{
		TaskID: taskID,
		Status: newStatus,
		Notes:  notes,
	}
	if actor != nil {
		assignment.AssignedBy = &actor.ID
		assignment.AssignedByEmployee = actor.IsEmployeeLinked()
	}
	if err := s.taskAssignRepo.Create(ctx, tx, assignment); err != nil {
		return "", fmt.Errorf("create task assignment: %w", err)
	}

	if task.ProjectID != nil {
		if err := s.cascadeProject(ctx, tx, *task.ProjectID, newStatus, actor); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}

	metrics.RecordTransition("task", string(newStatus))

	slog.Info("task status toggled",
		"task_id", taskID,
		"old_status", oldStatus,
		"new_status", newStatus,
		"assignment_id", assignment.ID,
	)

	return newStatus.Display(), nil
}

// cascadeProject applies the task->project consistency rules inside the
// toggle's transaction:
//   - the last outstanding task completing forces the project to completed;
//   - reopening a task under a completed project downgrades it to ongoing.
//
// Any other toggle leaves the project untouched. One ProjectAssignment row
// is written per forced transition.
func (s *TaskService) cascadeProject(
	ctx context.Context,
	tx pgx.Tx,
	projectID string,
	taskStatus domain.TaskStatus,
	actor *domain.User,
) error {
	project, err := s.projectRepo.GetByIDForUpdate(ctx, tx, projectID)
	if err != nil {
		return fmt.Errorf("load project for cascade: %w", err)
	}

	var newStatus domain.ProjectStatus
	var direction, cascadeNotes string

	switch taskStatus {
	case domain.TaskStatusCompleted:
		outstanding, err := s.taskRepo.CountOutstanding(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if outstanding > 0 || project.Status == domain.ProjectStatusCompleted {
			return nil
		}
		newStatus = domain.ProjectStatusCompleted
		direction = "completed"
		cascadeNotes = "All tasks completed"

	case domain.TaskStatusIncomplete:
		if project.Status != domain.ProjectStatusCompleted {
			return nil
		}
		newStatus = domain.ProjectStatusOngoing
		direction = "reopened"
		cascadeNotes = "Task reopened"

	default:
		return nil
	}

	if err := s.projectRepo.UpdateStatus(ctx, tx, projectID, project.Status, newStatus, nil); err != nil {
		return fmt.Errorf("cascade project status: %w", err)
	}

	assignment := &domain.ProjectAssignment{
		ProjectID: projectID,
		Status:    newStatus,
		Notes:     cascadeNotes,
	}
	if actor != nil {
		assignment.AssignedBy = &actor.ID
		assignment.AssignedByEmployee = actor.IsEmployeeLinked()
	}
	if err := s.projectAssignRepo.Create(ctx, tx, assignment); err != nil {
		return fmt.Errorf("create project assignment: %w", err)
	}

	metrics.RecordCascade(direction)

	slog.Info("project status cascaded",
		"project_id", projectID,
		"old_status", project.Status,
		"new_status", newStatus,
		"direction", direction,
	)

	return nil
}
