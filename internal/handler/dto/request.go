package dto

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Client      *string `json:"client,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SetProjectStatusRequest is the payload for changing a project's status.
type SetProjectStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Department  string   `json:"department"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"due_date"`
	ProjectID   *string  `json:"project_id,omitempty"`
	AssignedTo  []string `json:"assigned_to,omitempty"`
}

// ToggleTaskStatusRequest is the payload for toggling a task's status.
type ToggleTaskStatusRequest struct {
	Notes string `json:"notes,omitempty"`
}
