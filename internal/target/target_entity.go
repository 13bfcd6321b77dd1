package target

import (
	"time"

	"github.com/google/uuid"
)

// Target sengaja memakai bigserial, bukan uuid: tabel ini diisi massal
// dari spreadsheet dan pernah menerima baris migrasi manual, jadi
// counter sequence bisa tertinggal dari max(id).
type Target struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrgID     uuid.UUID `gorm:"column:org_id;type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Amount    float64   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Target) TableName() string {
	return "targets"
}
