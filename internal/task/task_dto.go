package task

import "time"

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProgramID   string `json:"program_id" binding:"omitempty,uuid"`
	AssigneeID  string `json:"assignee_id" binding:"omitempty,uuid"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=open in_progress done"`
	ProgramID   string `json:"program_id" binding:"omitempty,uuid"`
	AssigneeID  string `json:"assignee_id" binding:"omitempty,uuid"`
	DueDate     string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	OrgID       string     `json:"org_id"`
	ProgramID   string     `json:"program_id,omitempty"`
	AssigneeID  string     `json:"assignee_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
