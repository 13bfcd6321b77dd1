package organization

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string    `gorm:"size:20;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership menghubungkan user ke organisasi dengan satu role.
// Keunikan pasangan (user, org) dijaga lewat insert-if-not-exists di
// repo, bukan constraint DB; data lama punya jalur tulis yang tidak
// lewat constraint.
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_membership_user_org"`
	OrgID     uuid.UUID `gorm:"type:uuid;index:idx_membership_user_org"`
	Role      string    `gorm:"size:50;not null"`
	CreatedAt time.Time
}
