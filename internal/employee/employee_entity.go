package employee

import (
	"time"

	"go-orgsuite/internal/department"
	"go-orgsuite/internal/position"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID        uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index;uniqueIndex:uq_employee_org_email"`
	UserID       *uuid.UUID `gorm:"type:uuid"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	PositionID   *uuid.UUID `gorm:"type:uuid"`
	FullName     string     `gorm:"size:255;not null"`
	Email        string     `gorm:"size:255;not null;uniqueIndex:uq_employee_org_email"`
	Phone        string     `gorm:"size:32"`
	JoinDate     time.Time
	Status       string `gorm:"size:32;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department *department.Department `gorm:"foreignKey:DepartmentID"`
	Position   *position.Position     `gorm:"foreignKey:PositionID"`
}
