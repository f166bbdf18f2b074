package document

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

// Terminal reports whether the review status can no longer change.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name     string `gorm:"type:varchar(255);not null"`
	Type     string `gorm:"type:varchar(50);not null"`
	Status   string `gorm:"type:varchar(20);not null;default:'pending'"`
	FilePath string `gorm:"type:varchar(512);not null"`
	FileName string `gorm:"type:varchar(255);not null"`
	FileSize int64  `gorm:"not null"`
	MimeType string `gorm:"type:varchar(100)"`

	ExpirationDate *time.Time
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	RejectionReason string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
