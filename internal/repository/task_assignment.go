package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// TaskAssignmentRepository handles database operations for task audit rows.
type TaskAssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewTaskAssignmentRepository creates a new TaskAssignmentRepository.
func NewTaskAssignmentRepository(pool *pgxpool.Pool) *TaskAssignmentRepository {
	return &TaskAssignmentRepository{pool: pool}
}

// Create appends one audit row inside the caller's transaction.
func (r *TaskAssignmentRepository) Create(
	ctx context.Context,
	tx pgx.Tx,
	assignment *domain.TaskAssignment,
) error {
	query, args, err := psql.
		Insert("task_assignments").
		Columns("task_id", "status", "notes", "assigned_by", "assigned_by_employee").
		Values(
			assignment.TaskID,
			assignment.Status,
			assignment.Notes,
			assignment.AssignedBy,
			assignment.AssignedByEmployee,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task assignment: %w", err)
	}

	return nil
}

// TaskAssignmentWithActor is an audit row joined with the actor's name.
type TaskAssignmentWithActor struct {
	domain.TaskAssignment
	ActorName *string
}

// GetByTaskID retrieves the full status history of a task, oldest first.
func (r *TaskAssignmentRepository) GetByTaskID(ctx context.Context, taskID string) ([]*TaskAssignmentWithActor, error) {
	query, args, err := psql.
		Select(
			"a.id", "a.task_id", "a.status", "a.notes",
			"a.assigned_by", "a.assigned_by_employee", "a.created_at", "u.name",
		).
		From("task_assignments a").
		LeftJoin("users u ON u.id = a.assigned_by").
		Where(sq.Eq{"a.task_id": taskID}).
		OrderBy("a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query task assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*TaskAssignmentWithActor
	for rows.Next() {
		var a TaskAssignmentWithActor
		err := rows.Scan(
			&a.ID,
			&a.TaskID,
			&a.Status,
			&a.Notes,
			&a.AssignedBy,
			&a.AssignedByEmployee,
			&a.CreatedAt,
			&a.ActorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return assignments, nil
}

// CountByTaskID returns the number of audit rows for a task.
func (r *TaskAssignmentRepository) CountByTaskID(ctx context.Context, taskID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("task_assignments").
		Where(sq.Eq{"task_id": taskID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count task assignments: %w", err)
	}
	return count, nil
}
