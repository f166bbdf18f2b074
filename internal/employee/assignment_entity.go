package employee

import (
	"time"

	"github.com/google/uuid"
)

// RoleAssignment links an employee to a role. Historical rows keep their
// end_date; at most one row per employee has is_current = true, enforced by
// the reconciler updating the current row in place.
type RoleAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_roles_current"`
	RoleID     uuid.UUID `gorm:"type:uuid;not null;index"`

	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`
	IsCurrent bool       `gorm:"not null;default:false;index:idx_employee_roles_current"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoleAssignment) TableName() string {
	return "employee_roles"
}

// TeamMember is an at-most-one-row-per-employee association, so assigning is
// an upsert and unassigning is a delete. No history is kept.
type TeamMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TeamMember) TableName() string {
	return "team_members"
}

type SubteamMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SubteamID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubteamMember) TableName() string {
	return "subteam_members"
}
