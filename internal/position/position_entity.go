package position

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Position struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrgID        uuid.UUID      `gorm:"column:org_id;type:uuid;not null;index"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid"`
	Name         string         `gorm:"size:255;not null"`
	Level        int            `gorm:"default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
