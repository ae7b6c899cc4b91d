package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// TaskListFilters holds all supported filters for task listing.
type TaskListFilters struct {
	Search     string   // Optional: case-insensitive title match
	Statuses   []string // Optional: stored statuses plus the virtual "overdue"
	Priorities []string // Optional: filter by priority
	ProjectID  *string  // Optional: filter by project
	Today      time.Time
	Limit      int
	Offset     int
}

// applyTaskFilters adds the shared WHERE clauses to a query builder.
// "overdue" is not a stored status: asking for it ORs in the derived
// classification, while asking for plain statuses excludes overdue rows so
// the buckets stay disjoint.
func applyTaskFilters(qb sq.SelectBuilder, filters TaskListFilters) sq.SelectBuilder {
	if filters.Search != "" {
		qb = qb.Where(sq.ILike{"title": "%" + filters.Search + "%"})
	}

	if filters.ProjectID != nil {
		qb = qb.Where(sq.Eq{"project_id": *filters.ProjectID})
	}

	if len(filters.Priorities) > 0 {
		qb = qb.Where(sq.Eq{"priority": filters.Priorities})
	}

	if len(filters.Statuses) > 0 {
		today := filters.Today.Format(time.DateOnly)
		overdueCond := sq.And{
			sq.Eq{"status": domain.TaskStatusIncomplete},
			sq.Expr("due_date < ?", today),
		}

		stored := make([]string, 0, len(filters.Statuses))
		wantOverdue := false
		for _, status := range filters.Statuses {
			if status == string(domain.TaskStatusOverdue) {
				wantOverdue = true
				continue
			}
			stored = append(stored, status)
		}

		switch {
		case wantOverdue && len(stored) > 0:
			qb = qb.Where(sq.Or{sq.Eq{"status": stored}, overdueCond})
		case wantOverdue:
			qb = qb.Where(overdueCond)
		default:
			qb = qb.Where(sq.Eq{"status": stored}).
				Where(sq.Expr("NOT (status = 'incomplete' AND due_date < ?)", today))
		}
	}

	return qb
}

// List retrieves tasks with filters and pagination, newest first, plus the
// unpaginated total.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]*domain.Task, int, error) {
	qb := applyTaskFilters(psql.Select(taskColumns...).From("tasks"), filters).
		OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := applyTaskFilters(psql.Select("COUNT(*)").From("tasks"), filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	for _, task := range tasks {
		task.AssignedTo, err = r.getAssignees(ctx, task.ID)
		if err != nil {
			return nil, 0, err
		}
	}

	return tasks, total, nil
}
