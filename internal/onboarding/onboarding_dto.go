package onboarding

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type AssignTaskRequest struct {
	TaskID     string `json:"task_id" binding:"required,uuid"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	DueDate    string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type AssignmentResponse struct {
	ID          string        `json:"id"`
	CompanyID   string        `json:"company_id"`
	TaskID      string        `json:"task_id"`
	EmployeeID  string        `json:"employee_id"`
	Status      string        `json:"status"`
	DueDate     string        `json:"due_date,omitempty"`
	CompletedBy string        `json:"completed_by,omitempty"`
	CompletedAt string        `json:"completed_at,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Task        *TaskResponse `json:"task,omitempty"`
}
