package events

import "time"

const TaskAssignedTopic = "orgsuite.task.lifecycle.v1"

type TaskAssignedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TaskID     string    `json:"task_id"`
	OrgID      string    `json:"org_id"`
	AssigneeID string    `json:"assignee_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}
