package document

// UploadDocumentRequest carries the multipart form fields; the file itself
// arrives as the "file" part.
type UploadDocumentRequest struct {
	EmployeeID     string `form:"employee_id" binding:"required,uuid"`
	Name           string `form:"name" binding:"required"`
	Type           string `form:"type" binding:"required"`
	ExpirationDate string `form:"expiration_date" binding:"omitempty,datetime=2006-01-02"`
}

type RejectDocumentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type DocumentResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	FileName        string `json:"file_name"`
	FileSize        int64  `json:"file_size"`
	MimeType        string `json:"mime_type,omitempty"`
	ExpirationDate  string `json:"expiration_date,omitempty"`
	ReviewedBy      string `json:"reviewed_by,omitempty"`
	ReviewedAt      string `json:"reviewed_at,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
