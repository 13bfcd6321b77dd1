package assessment

import (
	"time"

	"github.com/google/uuid"
)

type Assessment struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	EmployeeID  uuid.UUID
	Title       string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
	Items       []Item
}

// Item adalah butir penilaian di bawah satu assessment header.
type Item struct {
	ID           uuid.UUID
	AssessmentID uuid.UUID
	Name         string
	Weight       float64
	Score        float64
}
