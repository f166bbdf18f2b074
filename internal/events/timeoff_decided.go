package events

import "time"

const TimeOffDecidedTopic = "hcm.timeoff.decided"

// TimeOffDecidedEvent is emitted when a request leaves pending. Status is
// the terminal status (approved or rejected).
type TimeOffDecidedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	TimeOffID   string    `json:"timeoff_id"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	TimeOffType string    `json:"timeoff_type"`
	Status      string    `json:"status"`
	DecidedBy   string    `json:"decided_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
