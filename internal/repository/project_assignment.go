package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// ProjectAssignmentRepository handles database operations for project audit rows.
type ProjectAssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewProjectAssignmentRepository creates a new ProjectAssignmentRepository.
func NewProjectAssignmentRepository(pool *pgxpool.Pool) *ProjectAssignmentRepository {
	return &ProjectAssignmentRepository{pool: pool}
}

// Create appends one audit row inside the caller's transaction. Rows are
// never updated or deleted afterwards.
func (r *ProjectAssignmentRepository) Create(
	ctx context.Context,
	tx pgx.Tx,
	assignment *domain.ProjectAssignment,
) error {
	query, args, err := psql.
		Insert("project_assignments").
		Columns("project_id", "status", "notes", "assigned_by", "assigned_by_employee").
		Values(
			assignment.ProjectID,
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
		return fmt.Errorf("create project assignment: %w", err)
	}

	return nil
}

// ProjectAssignmentWithActor is an audit row joined with the actor's name.
type ProjectAssignmentWithActor struct {
	domain.ProjectAssignment
	ActorName *string
}

// GetByProjectID retrieves the full status history of a project, oldest first.
func (r *ProjectAssignmentRepository) GetByProjectID(ctx context.Context, projectID string) ([]*ProjectAssignmentWithActor, error) {
	query, args, err := psql.
		Select(
			"a.id", "a.project_id", "a.status", "a.notes",
			"a.assigned_by", "a.assigned_by_employee", "a.created_at", "u.name",
		).
		From("project_assignments a").
		LeftJoin("users u ON u.id = a.assigned_by").
		Where(sq.Eq{"a.project_id": projectID}).
		OrderBy("a.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query project assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*ProjectAssignmentWithActor
	for rows.Next() {
		var a ProjectAssignmentWithActor
		err := rows.Scan(
			&a.ID,
			&a.ProjectID,
			&a.Status,
			&a.Notes,
			&a.AssignedBy,
			&a.AssignedByEmployee,
			&a.CreatedAt,
			&a.ActorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return assignments, nil
}

// CountByProjectID returns the number of audit rows for a project.
func (r *ProjectAssignmentRepository) CountByProjectID(ctx context.Context, projectID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("project_assignments").
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count project assignments: %w", err)
	}
	return count, nil
}
