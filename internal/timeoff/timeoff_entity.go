package timeoff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeVacation      = "vacation"
	TypeSickLeave     = "sick_leave"
	TypeMaternity     = "maternity_leave"
	TypePaternity     = "paternity_leave"
	TypePersonal      = "personal"
	TypeBereavement   = "bereavement"
	TypeUnpaid        = "unpaid"
)

func ValidType(t string) bool {
	switch t {
	case TypeVacation, TypeSickLeave, TypeMaternity, TypePaternity, TypePersonal, TypeBereavement, TypeUnpaid:
		return true
	}
	return false
}

// Terminal reports whether the request can no longer be decided.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

type TimeOffRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Type      string    `gorm:"type:varchar(30);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	TotalDays int       `gorm:"not null"`
	Reason    string    `gorm:"type:text"`

	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
