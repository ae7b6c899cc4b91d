package domain

import "time"

// ProjectAssignment is an append-only audit record of a project status
// change. Rows are never updated or deleted; one row is written per
// lifecycle transition, including system-forced ones.
type ProjectAssignment struct {
	ID                 string
	ProjectID          string
	Status             ProjectStatus
	Notes              string
	AssignedBy         *string // nil when the transition was system-triggered
	AssignedByEmployee bool
	CreatedAt          time.Time
}

// TaskAssignment is an append-only audit record of a task status change.
type TaskAssignment struct {
	ID                 string
	TaskID             string
	Status             TaskStatus
	Notes              string
	AssignedBy         *string
	AssignedByEmployee bool
	CreatedAt          time.Time
}

// IsSystemEvent returns true if the record was created without an actor.
func (a *ProjectAssignment) IsSystemEvent() bool {
	return a.AssignedBy == nil
}
