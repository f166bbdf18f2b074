package onboarding

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssignmentPending   = "pending"
	AssignmentCompleted = "completed"
)

// OnboardingTask is a reusable checklist item defined per company.
type OnboardingTask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(50)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// OnboardingAssignment links a task to an employee. It starts pending and
// can only move to completed.
type OnboardingAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TaskID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate     *time.Time
	CompletedBy *uuid.UUID `gorm:"type:uuid"`
	CompletedAt *time.Time
	Notes       string `gorm:"type:text"`

	Task *OnboardingTask `gorm:"foreignKey:TaskID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
