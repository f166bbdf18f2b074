package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindTimeOffDecided   = "timeoff_decided"
	KindDocumentReviewed = "document_reviewed"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_company_employee"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_company_employee"`

	Kind  string `gorm:"type:varchar(40);not null"`
	Title string `gorm:"type:varchar(255);not null"`
	Body  string `gorm:"type:text"`
	Read  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
