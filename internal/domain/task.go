package domain

import "time"

// TaskStatus represents the stored status of a task. The status column only
// ever holds completed or incomplete; overdue is a derived classification
// computed from (incomplete AND due_date in the past) by every consumer.
type TaskStatus string

const (
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusIncomplete TaskStatus = "incomplete"

	// TaskStatusOverdue is a virtual value accepted in list filters and
	// shown as a display classification. It is never written to the status
	// column.
	TaskStatusOverdue TaskStatus = "overdue"
)

// IsStorable checks if the status is a value the lifecycle engine may persist.
func (s TaskStatus) IsStorable() bool {
	return s == TaskStatusCompleted || s == TaskStatusIncomplete
}

// Display returns the human-readable label for the status.
func (s TaskStatus) Display() string {
	switch s {
	case TaskStatusCompleted:
		return "Completed"
	case TaskStatusIncomplete:
		return "Incomplete"
	case TaskStatusOverdue:
		return "Overdue"
	default:
		return string(s)
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of work, optionally belonging to a project.
type Task struct {
	ID          string
	Title       string
	Description *string
	Department  string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     time.Time
	CompletedAt *time.Time
	ProjectID   *string
	AssignedTo  []string
	CreatedAt   time.Time
}

// IsOverdue reports whether the task is past due and still incomplete.
// Civil dates are compared, not instants: due_date scans as midnight UTC
// while today is midnight in the configured zone, so an instant comparison
// would misclassify tasks due today in zones west of UTC.
func (t *Task) IsOverdue(today time.Time) bool {
	return t.Status == TaskStatusIncomplete &&
		t.DueDate.Format(time.DateOnly) < today.Format(time.DateOnly)
}

// DisplayStatus returns the status label with the derived overdue
// classification applied.
func (t *Task) DisplayStatus(today time.Time) string {
	if t.IsOverdue(today) {
		return TaskStatusOverdue.Display()
	}
	return t.Status.Display()
}
