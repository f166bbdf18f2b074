package employee

type AdmitEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	ContractType   string `json:"contract_type" binding:"required,oneof=CLT PJ"`
	HireDate       string `json:"hire_date" binding:"required"`
	EmployeeNumber string `json:"employee_number"`
	IsAdmin        bool   `json:"is_admin"`
}

type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active vacation terminated maternity_leave sick_leave"`
}

// AssignmentRequest is the target membership state submitted from the edit
// dialog. RoleID is mandatory; empty team/subteam means "remove".
type AssignmentRequest struct {
	RoleID    string `json:"role_id" binding:"required,uuid"`
	TeamID    string `json:"team_id" binding:"omitempty,uuid"`
	SubteamID string `json:"subteam_id" binding:"omitempty,uuid"`
}

type AssignmentResponse struct {
	EmployeeID string `json:"employee_id"`
	RoleID     string `json:"role_id"`
	TeamID     string `json:"team_id,omitempty"`
	SubteamID  string `json:"subteam_id,omitempty"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status"`
	ContractType   string `json:"contract_type"`
	IsAdmin        bool   `json:"is_admin"`
	HireDate       string `json:"hire_date"`
}
