package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrackhq/worktrack/internal/domain"
)

func TestProjectIsOverdue_CivilDates(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	endsToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	todayNewYork := time.Date(2025, 6, 15, 0, 0, 0, 0, newYork)

	project := &domain.Project{Status: domain.ProjectStatusOngoing, EndDate: endsToday}
	assert.False(t, project.IsOverdue(todayNewYork), "ending today is not overdue, regardless of zone offset")

	project.EndDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, project.IsOverdue(todayNewYork))

	project.Status = domain.ProjectStatusPaused
	assert.True(t, project.IsOverdue(todayNewYork), "paused projects stay eligible for overdue")

	project.Status = domain.ProjectStatusCompleted
	assert.False(t, project.IsOverdue(todayNewYork), "only active projects can be overdue")

	project.Status = domain.ProjectStatusPendingApproval
	assert.False(t, project.IsOverdue(todayNewYork))
}
