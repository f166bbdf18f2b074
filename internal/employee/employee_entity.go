package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive         = "active"
	StatusVacation       = "vacation"
	StatusTerminated     = "terminated"
	StatusMaternityLeave = "maternity_leave"
	StatusSickLeave      = "sick_leave"
)

const (
	ContractCLT = "CLT"
	ContractPJ  = "PJ"
)

type Employee struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	EmployeeNumber string `gorm:"type:varchar(20);not null"`
	FullName       string `gorm:"type:varchar(255);not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone          string `gorm:"type:varchar(30)"`

	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	ContractType string    `gorm:"type:varchar(10);not null;default:'CLT'"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	HireDate     time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusVacation, StatusTerminated, StatusMaternityLeave, StatusSickLeave:
		return true
	}
	return false
}
