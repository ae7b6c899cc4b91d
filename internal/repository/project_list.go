package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// ProjectListFilters holds all supported filters for project listing.
type ProjectListFilters struct {
	Search   string   // Optional: case-insensitive name match
	Statuses []string // Optional: stored statuses plus the virtual "overdue"
	Today    time.Time
	Limit    int
	Offset   int
}

// applyProjectFilters adds the shared WHERE clauses to a query builder.
// A project is overdue when it is still active (ongoing or paused) past its
// end date; the virtual "overdue" filter ORs that in, and plain status
// filters exclude it.
func applyProjectFilters(qb sq.SelectBuilder, filters ProjectListFilters) sq.SelectBuilder {
	if filters.Search != "" {
		qb = qb.Where(sq.ILike{"name": "%" + filters.Search + "%"})
	}

	if len(filters.Statuses) > 0 {
		today := filters.Today.Format(time.DateOnly)
		overdueCond := sq.And{
			sq.Eq{"status": []domain.ProjectStatus{
				domain.ProjectStatusOngoing,
				domain.ProjectStatusPaused,
			}},
			sq.Expr("end_date < ?", today),
		}

		stored := make([]string, 0, len(filters.Statuses))
		wantOverdue := false
		for _, status := range filters.Statuses {
			if status == "overdue" {
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
				Where(sq.Expr("NOT (status IN ('ongoing', 'paused') AND end_date < ?)", today))
		}
	}

	return qb
}

// List retrieves projects with filters and pagination, newest first, plus
// the unpaginated total.
func (r *ProjectRepository) List(ctx context.Context, filters ProjectListFilters) ([]*domain.Project, int, error) {
	qb := applyProjectFilters(psql.Select(projectColumns...).From("projects"), filters).
		OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query projects: %w", err)
	}

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := applyProjectFilters(psql.Select("COUNT(*)").From("projects"), filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	return projects, total, nil
}
