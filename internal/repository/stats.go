package repository

import (
	"context"
	"fmt"
	"time"
)

// TaskCounts holds the raw aggregate counts for a task set. Derived values
// (incomplete, completion rate) are computed by the stats service, not
// re-queried.
type TaskCounts struct {
	Total     int
	Completed int
	Overdue   int
}

// ProjectCounts holds the aggregate counts for the project set. Overdue is
// an orthogonal bucket: an ongoing project past its end date is counted in
// both Ongoing and Overdue.
type ProjectCounts struct {
	Total           int
	Ongoing         int
	Completed       int
	PendingApproval int
	Paused          int
	Overdue         int
}

// GetCounts retrieves task aggregates, optionally scoped to one project.
// A task is overdue when it is still incomplete and due strictly before
// today; today is the caller's civil date, not the database clock.
func (r *TaskRepository) GetCounts(ctx context.Context, projectID *string, today time.Time) (*TaskCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'incomplete' AND due_date < $1)
		FROM tasks
	`
	args := []interface{}{today.Format(time.DateOnly)}

	if projectID != nil {
		query += " WHERE project_id = $2"
		args = append(args, *projectID)
	}

	var counts TaskCounts
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&counts.Total,
		&counts.Completed,
		&counts.Overdue,
	)
	if err != nil {
		return nil, fmt.Errorf("query task counts: %w", err)
	}

	return &counts, nil
}

// GetCounts retrieves project aggregates per status plus the overdue bucket.
func (r *ProjectRepository) GetCounts(ctx context.Context, today time.Time) (*ProjectCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ongoing'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'pending-approval'),
			COUNT(*) FILTER (WHERE status = 'paused'),
			COUNT(*) FILTER (WHERE status IN ('ongoing', 'paused') AND end_date < $1)
		FROM projects
	`

	var counts ProjectCounts
	err := r.pool.QueryRow(ctx, query, today.Format(time.DateOnly)).Scan(
		&counts.Total,
		&counts.Ongoing,
		&counts.Completed,
		&counts.PendingApproval,
		&counts.Paused,
		&counts.Overdue,
	)
	if err != nil {
		return nil, fmt.Errorf("query project counts: %w", err)
	}

	return &counts, nil
}
