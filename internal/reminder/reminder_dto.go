package reminder

import "time"

type CreateReminderRequest struct {
	Title string `json:"title" binding:"required"`
	Notes string `json:"notes"`
	DueAt string `json:"due_at" binding:"required"`
}

type UpdateReminderRequest struct {
	Title string `json:"title" binding:"required"`
	Notes string `json:"notes"`
	DueAt string `json:"due_at" binding:"required"`
	Done  *bool  `json:"done"`
}

type ReminderResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	DueAt     time.Time `json:"due_at"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}
