package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID      `gorm:"column:org_id;type:uuid;not null;index"`
	Name        string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
