package events

import "time"

const DocumentReviewedTopic = "hcm.document.reviewed"

type DocumentReviewedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	DocumentID   string    `json:"document_id"`
	CompanyID    string    `json:"company_id"`
	EmployeeID   string    `json:"employee_id"`
	DocumentName string    `json:"document_name"`
	Status       string    `json:"status"`
	ReviewedBy   string    `json:"reviewed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
