package auth

type RegisterRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	CNPJ        string `json:"cnpj" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	IsAdmin    bool   `json:"is_admin"`
}

type MeResponse struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	IsAdmin    bool   `json:"is_admin"`
}
