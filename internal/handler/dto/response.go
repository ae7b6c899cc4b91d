package dto

import (
	"time"

	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/repository"
	"github.com/worktrackhq/worktrack/internal/service"
)

// ProjectResponse is the project detail payload.
type ProjectResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	StatusDisplay   string     `json:"status_display"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Budget          float64    `json:"budget"`
	Client          *string    `json:"client,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Overdue         bool       `json:"overdue"`
	ProgressStarted *time.Time `json:"progress_started,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ProjectListResponse is a paginated list of projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

// TaskResponse is the task detail payload. Status display reflects the
// overdue state at read time.
type TaskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Department    string     `json:"department"`
	Status        string     `json:"status"`
	StatusDisplay string     `json:"status_display"`
	Priority      string     `json:"priority"`
	DueDate       string     `json:"due_date"`
	Overdue       bool       `json:"overdue"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	ProjectID     *string    `json:"project_id,omitempty"`
	AssignedTo    []string   `json:"assigned_to"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TaskListResponse is a paginated list of tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// AssignmentResponse is one audit trail entry.
type AssignmentResponse struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes"`
	AssignedBy         *string   `json:"assigned_by,omitempty"`
	AssignedByName     *string   `json:"assigned_by_name,omitempty"`
	AssignedByEmployee bool      `json:"assigned_by_employee"`
	CreatedAt          time.Time `json:"created_at"`
}

// AssignmentListResponse is the audit trail for a project or task.
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

// StatusChangeResponse carries the display label of the status that was applied.
type StatusChangeResponse struct {
	Status string `json:"status"`
}

// TaskStatsResponse is the task statistics payload.
type TaskStatsResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
	Overdue    int `json:"overdue"`
	Rate       int `json:"rate"`
}

// ProjectStatsResponse is the project statistics payload.
type ProjectStatsResponse struct {
	Total           int `json:"total"`
	Ongoing         int `json:"ongoing"`
	Completed       int `json:"completed"`
	PendingApproval int `json:"pending_approval"`
	Paused          int `json:"paused"`
	Overdue         int `json:"overdue"`
}

// ProjectToResponse converts a domain project. Overdue is derived against
// the given day, never stored.
func ProjectToResponse(p *domain.Project, today time.Time) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Status:          string(p.Status),
		StatusDisplay:   p.Status.Display(),
		StartDate:       p.StartDate.Format(time.DateOnly),
		EndDate:         p.EndDate.Format(time.DateOnly),
		Budget:          p.Budget,
		Client:          p.Client,
		Description:     p.Description,
		Overdue:         p.IsOverdue(today),
		ProgressStarted: p.ProgressStarted,
		CreatedAt:       p.CreatedAt,
	}
}

// ProjectsToListResponse converts a page of projects.
func ProjectsToListResponse(projects []*domain.Project, total int, today time.Time) ProjectListResponse {
	resp := ProjectListResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Total:    total,
	}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, ProjectToResponse(p, today))
	}
	return resp
}

// TaskToResponse converts a domain task.
func TaskToResponse(t *domain.Task, today time.Time) TaskResponse {
	assignedTo := t.AssignedTo
	if assignedTo == nil {
		assignedTo = []string{}
	}
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Department:    t.Department,
		Status:        string(t.Status),
		StatusDisplay: t.DisplayStatus(today),
		Priority:      string(t.Priority),
		DueDate:       t.DueDate.Format(time.DateOnly),
		Overdue:       t.IsOverdue(today),
		CompletedAt:   t.CompletedAt,
		ProjectID:     t.ProjectID,
		AssignedTo:    assignedTo,
		CreatedAt:     t.CreatedAt,
	}
}

// TasksToListResponse converts a page of tasks.
func TasksToListResponse(tasks []*domain.Task, total int, today time.Time) TaskListResponse {
	resp := TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: total,
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, TaskToResponse(t, today))
	}
	return resp
}

// ProjectAssignmentsToListResponse converts a project audit trail.
func ProjectAssignmentsToListResponse(assignments []*repository.ProjectAssignmentWithActor) AssignmentListResponse {
	resp := AssignmentListResponse{
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
		Total:       len(assignments),
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			ID:                 a.ID,
			Status:             string(a.Status),
			Notes:              a.Notes,
			AssignedBy:         a.AssignedBy,
			AssignedByName:     a.ActorName,
			AssignedByEmployee: a.AssignedByEmployee,
			CreatedAt:          a.CreatedAt,
		})
	}
	return resp
}

// TaskAssignmentsToListResponse converts a task audit trail.
func TaskAssignmentsToListResponse(assignments []*repository.TaskAssignmentWithActor) AssignmentListResponse {
	resp := AssignmentListResponse{
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
		Total:       len(assignments),
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			ID:                 a.ID,
			Status:             string(a.Status),
			Notes:              a.Notes,
			AssignedBy:         a.AssignedBy,
			AssignedByName:     a.ActorName,
			AssignedByEmployee: a.AssignedByEmployee,
			CreatedAt:          a.CreatedAt,
		})
	}
	return resp
}

// TaskStatsToResponse converts computed task statistics.
func TaskStatsToResponse(s *service.TaskStats) TaskStatsResponse {
	return TaskStatsResponse{
		Total:      s.Total,
		Completed:  s.Completed,
		Incomplete: s.Incomplete,
		Overdue:    s.Overdue,
		Rate:       s.Rate,
	}
}

// ProjectStatsToResponse converts computed project statistics.
func ProjectStatsToResponse(s *service.ProjectStats) ProjectStatsResponse {
	return ProjectStatsResponse{
		Total:           s.Total,
		Ongoing:         s.Ongoing,
		Completed:       s.Completed,
		PendingApproval: s.PendingApproval,
		Paused:          s.Paused,
		Overdue:         s.Overdue,
	}
}
