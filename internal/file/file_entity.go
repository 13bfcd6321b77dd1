package file

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Folder struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid"`
	Name      string     `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// File hanya metadata; isi file tersimpan di object storage dengan
// ObjectKey sebagai alamatnya.
type File struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	FolderID    *uuid.UUID `gorm:"type:uuid"`
	UploaderID  uuid.UUID  `gorm:"type:uuid;not null"`
	Name        string     `gorm:"size:255;not null"`
	ObjectKey   string     `gorm:"size:512;not null;uniqueIndex"`
	ContentType string     `gorm:"size:128"`
	Size        int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
