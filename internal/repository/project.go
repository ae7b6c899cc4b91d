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

// projectColumns is the shared list of columns for project queries.
var projectColumns = []string{
	"id", "name", "status", "start_date", "end_date", "budget",
	"client", "description", "progress_started", "created_by", "created_at",
}

// ProjectRepository handles database operations for projects.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// scanProject scans a single row into a Project struct.
func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Status,
		&project.StartDate,
		&project.EndDate,
		&project.Budget,
		&project.Client,
		&project.Description,
		&project.ProgressStarted,
		&project.CreatedBy,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &project, nil
}

// scanProjects scans multiple rows into a slice of Project structs.
func scanProjects(rows pgx.Rows) ([]*domain.Project, error) {
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query, args, err := psql.
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": projectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for project: %w", err)
	}

	return scanProject(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves a project by ID with FOR UPDATE lock (within transaction).
func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	query, args, err := psql.
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": projectID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for project %s: %w", projectID, err)
	}

	return scanProject(tx.QueryRow(ctx, query, args...))
}

// Create inserts a new project. Returns the project with ID and CreatedAt populated.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project.Status == "" {
		project.Status = domain.ProjectStatusPendingApproval
	}

	query, args, err := psql.
		Insert("projects").
		Columns(
			"name", "status", "start_date", "end_date", "budget",
			"client", "description", "created_by",
		).
		Values(
			project.Name,
			project.Status,
			project.StartDate,
			project.EndDate,
			project.Budget,
			project.Client,
			project.Description,
			project.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for project: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

// UpdateStatus updates the project status, guarded by the previously read
// status. Returns ErrConflict if the row was modified in between. When
// progressStarted is non-nil the progress_started stamp is written in the
// same statement; a nil value never clears an existing stamp.
func (r *ProjectRepository) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	projectID string,
	oldStatus domain.ProjectStatus,
	newStatus domain.ProjectStatus,
	progressStarted *time.Time,
) error {
	qb := psql.
		Update("projects").
		Set("status", newStatus).
		Where(sq.Eq{
			"id":     projectID,
			"status": oldStatus,
		})
	if progressStarted != nil {
		qb = qb.Set("progress_started", *progressStarted)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build UpdateStatus query for project %s: %w", projectID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	return nil
}
