package events

import "time"

const ReminderDueTopic = "orgsuite.reminder.due.v1"

type ReminderDueEvent struct {
	EventType  string    `json:"event_type"`
	ReminderID string    `json:"reminder_id"`
	OrgID      string    `json:"org_id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	DueAt      time.Time `json:"due_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
