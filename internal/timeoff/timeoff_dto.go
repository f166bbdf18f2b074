package timeoff

type CreateTimeOffRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Type       string `json:"type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason     string `json:"reason"`
}

type RejectTimeOffRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type TimeOffResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	EmployeeID      string `json:"employee_id"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalDays       int    `json:"total_days"`
	Reason          string `json:"reason,omitempty"`
	ReviewedBy      string `json:"reviewed_by,omitempty"`
	ReviewedAt      string `json:"reviewed_at,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
