package service

import (
	"context"

	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/repository"
)

// TaskStats is a point-in-time aggregate over a task set. Incomplete is
// total minus completed by definition, and Rate is the floored completion
// percentage, 0 for an empty set.
type TaskStats struct {
	Total      int
	Completed  int
	Incomplete int
	Overdue    int
	Rate       int
}

// ProjectStats is a point-in-time aggregate over the project set. Overdue
// is layered on top of the status buckets, not a status of its own.
type ProjectStats struct {
	Total           int
	Ongoing         int
	Completed       int
	PendingApproval int
	Paused          int
	Overdue         int
}

// StatsService computes aggregate statistics. Pure reads: no snapshot lock
// is taken, so two concurrent calls may observe different results if writes
// interleave.
type StatsService struct {
	taskRepo    *repository.TaskRepository
	projectRepo *repository.ProjectRepository
	clock       clock.Clock
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	taskRepo *repository.TaskRepository,
	projectRepo *repository.ProjectRepository,
	clk clock.Clock,
) *StatsService {
	return &StatsService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		clock:       clk,
	}
}

// TaskStats computes task aggregates, optionally scoped to one project.
// Never fails on empty data; an empty set yields all zeros.
func (s *StatsService) TaskStats(ctx context.Context, projectID *string) (*TaskStats, error) {
	counts, err := s.taskRepo.GetCounts(ctx, projectID, clock.Today(s.clock))
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{
		Total:      counts.Total,
		Completed:  counts.Completed,
		Incomplete: counts.Total - counts.Completed,
		Overdue:    counts.Overdue,
	}
	if counts.Total > 0 {
		stats.Rate = 100 * counts.Completed / counts.Total
	}

	return stats, nil
}

// ProjectStats computes project aggregates across the whole project set.
func (s *StatsService) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	counts, err := s.projectRepo.GetCounts(ctx, clock.Today(s.clock))
	if err != nil {
		return nil, err
	}

	return &ProjectStats{
		Total:           counts.Total,
		Ongoing:         counts.Ongoing,
		Completed:       counts.Completed,
		PendingApproval: counts.PendingApproval,
		Paused:          counts.Paused,
		Overdue:         counts.Overdue,
	}, nil
}
