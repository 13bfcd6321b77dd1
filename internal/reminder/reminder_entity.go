package reminder

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID `gorm:"column:org_id;type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	Notes     string    `gorm:"type:text"`
	DueAt     time.Time `gorm:"not null;index"`
	Done      bool      `gorm:"default:false"`
	NotifiedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
