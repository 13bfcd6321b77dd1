package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User adalah identitas global, bukan milik satu organisasi.
// Keanggotaan organisasi ada di tabel memberships.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	FullName  string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email     string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password  string         `gorm:"column:password;type:text;not null"`
	Role      string         `gorm:"column:role;type:varchar(20);default:'user'"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
