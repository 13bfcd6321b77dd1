package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	ProgramID   *uuid.UUID `gorm:"type:uuid;index"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"size:20;default:'open'"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
