package company

type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	CNPJ string `json:"cnpj"`
}

type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj,omitempty"`
}
