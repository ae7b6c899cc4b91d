package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrackhq/worktrack/internal/domain"
)

// Overdue is a civil-date comparison: the database scans date columns as
// midnight UTC while "today" is midnight in the configured zone, and the
// two must agree on the same calendar day.
func TestTaskIsOverdue_CivilDates(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	dueToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	dueYesterday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	todayUTC := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	todayNewYork := time.Date(2025, 6, 15, 0, 0, 0, 0, newYork)

	task := &domain.Task{Status: domain.TaskStatusIncomplete, DueDate: dueToday}
	assert.False(t, task.IsOverdue(todayUTC), "due today is not overdue")
	assert.False(t, task.IsOverdue(todayNewYork), "due today is not overdue west of UTC either")

	task.DueDate = dueYesterday
	assert.True(t, task.IsOverdue(todayUTC))
	assert.True(t, task.IsOverdue(todayNewYork))

	task.Status = domain.TaskStatusCompleted
	assert.False(t, task.IsOverdue(todayUTC), "completed tasks are never overdue")
}

func TestTaskDisplayStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	task := &domain.Task{
		Status:  domain.TaskStatusIncomplete,
		DueDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Overdue", task.DisplayStatus(today))

	task.DueDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Incomplete", task.DisplayStatus(today))

	task.Status = domain.TaskStatusCompleted
	assert.Equal(t, "Completed", task.DisplayStatus(today))
}
