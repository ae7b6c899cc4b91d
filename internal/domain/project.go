package domain

import "time"

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectStatusPendingApproval ProjectStatus = "pending-approval"
	ProjectStatusOngoing         ProjectStatus = "ongoing"
	ProjectStatusCompleted       ProjectStatus = "completed"
	ProjectStatusPaused          ProjectStatus = "paused"
)

// IsValid checks if the status is one of the allowed values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPendingApproval, ProjectStatusOngoing,
		ProjectStatusCompleted, ProjectStatusPaused:
		return true
	default:
		return false
	}
}

// Display returns the human-readable label for the status.
func (s ProjectStatus) Display() string {
	switch s {
	case ProjectStatusPendingApproval:
		return "Pending Approval"
	case ProjectStatusOngoing:
		return "Ongoing"
	case ProjectStatusCompleted:
		return "Completed"
	case ProjectStatusPaused:
		return "Paused"
	default:
		return string(s)
	}
}

// IsActive returns true for statuses where the project can still run past
// its end date, which makes it eligible for the overdue bucket.
func (s ProjectStatus) IsActive() bool {
	return s == ProjectStatusOngoing || s == ProjectStatusPaused
}

// Project represents a client project owning a set of tasks.
type Project struct {
	ID              string
	Name            string
	Status          ProjectStatus
	StartDate       time.Time
	EndDate         time.Time
	Budget          float64
	Client          *string
	Description     *string
	ProgressStarted *time.Time
	CreatedBy       *string
	CreatedAt       time.Time
}

// IsOverdue reports whether the project ran past its end date while still
// active. Overdue is a derived classification, never a stored status.
// Compared as civil dates so the UTC-scanned end_date and the zone-local
// today agree on what "today" is.
func (p *Project) IsOverdue(today time.Time) bool {
	return p.Status.IsActive() &&
		p.EndDate.Format(time.DateOnly) < today.Format(time.DateOnly)
}
