package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "title", "description", "department", "status", "priority",
	"due_date", "completed_at", "project_id", "created_at",
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Department,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CompletedAt,
		&task.ProjectID,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID with its assignee set.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	task, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	task.AssignedTo, err = r.getAssignees(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetByIDForUpdate retrieves a task by ID with FOR UPDATE lock (within transaction).
// The assignee set is not loaded; lifecycle transitions never touch it.
func (r *TaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for task %s: %w", taskID, err)
	}

	return scanTask(tx.QueryRow(ctx, query, args...))
}

// getAssignees loads the employee IDs assigned to a task.
func (r *TaskRepository) getAssignees(ctx context.Context, taskID string) ([]string, error) {
	query, args, err := psql.
		Select("employee_id").
		From("task_assignees").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("employee_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignees query for task %s: %w", taskID, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task assignees: %w", err)
	}
	defer rows.Close()

	assignees := []string{}
	for rows.Next() {
		var employeeID string
		if err := rows.Scan(&employeeID); err != nil {
			return nil, fmt.Errorf("scan task assignee: %w", err)
		}
		assignees = append(assignees, employeeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return assignees, nil
}

// Create inserts a new task and its assignee rows within a transaction.
// Returns the task with ID and CreatedAt populated.
func (r *TaskRepository) Create(ctx context.Context, tx pgx.Tx, task *domain.Task) (*domain.Task, error) {
	// Set defaults
	if task.Status == "" {
		task.Status = domain.TaskStatusIncomplete
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityLow
	}
	if task.AssignedTo == nil {
		task.AssignedTo = []string{}
	}

	query, args, err := psql.
		Insert("tasks").
		Columns(
			"title", "description", "department", "status", "priority",
			"due_date", "project_id",
		).
		Values(
			task.Title,
			task.Description,
			task.Department,
			task.Status,
			task.Priority,
			task.DueDate,
			task.ProjectID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	for _, employeeID := range task.AssignedTo {
		insert, insertArgs, err := psql.
			Insert("task_assignees").
			Columns("task_id", "employee_id").
			Values(task.ID, employeeID).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build assignee insert for task %s: %w", task.ID, err)
		}
		if _, err := tx.Exec(ctx, insert, insertArgs...); err != nil {
			return nil, fmt.Errorf("assign employee %s to task: %w", employeeID, err)
		}
	}

	return task, nil
}

// UpdateStatus flips the task status, guarded by the previously read status.
// Returns ErrConflict if the row was modified in between. completedAt is
// written as given: the timestamp when completing, nil when reverting, so
// the completed_at<->status invariant holds in one statement.
func (r *TaskRepository) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	taskID string,
	oldStatus domain.TaskStatus,
	newStatus domain.TaskStatus,
	completedAt *time.Time,
) error {
	query, args, err := psql.
		Update("tasks").
		Set("status", newStatus).
		Set("completed_at", completedAt).
		Where(sq.Eq{
			"id":     taskID,
			"status": oldStatus,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build UpdateStatus query for task %s: %w", taskID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	return nil
}

// CountOutstanding counts a project's tasks that are not completed yet.
// Runs on the transaction so it observes status changes made earlier in the
// same unit of work.
func (r *TaskRepository) CountOutstanding(ctx context.Context, tx pgx.Tx, projectID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("tasks").
		Where(sq.Eq{"project_id": projectID}).
		Where(sq.NotEq{"status": domain.TaskStatusCompleted}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountOutstanding query for project %s: %w", projectID, err)
	}

	var count int
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count outstanding tasks: %w", err)
	}
	return count, nil
}
