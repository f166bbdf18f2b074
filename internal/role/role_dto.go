package role

type SkillInput struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level"`
}

type CreateRoleRequest struct {
	Title                string       `json:"title" binding:"required"`
	ContractType         string       `json:"contract_type" binding:"required,oneof=CLT PJ"`
	Description          string       `json:"description"`
	TeamID               string       `json:"team_id" binding:"omitempty,uuid"`
	Courses              []string     `json:"courses"`
	ComplementaryCourses []string     `json:"complementary_courses"`
	TechnicalSkills      []SkillInput `json:"technical_skills"`
	BehavioralSkills     []string     `json:"behavioral_skills"`
	Languages            []SkillInput `json:"languages"`
}

type UpdateRoleRequest struct {
	Title        string `json:"title" binding:"required"`
	ContractType string `json:"contract_type" binding:"required,oneof=CLT PJ"`
	Description  string `json:"description"`
	TeamID       string `json:"team_id" binding:"omitempty,uuid"`
	IsActive     *bool  `json:"is_active"`
}

type SkillResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type RoleResponse struct {
	ID                   string          `json:"id"`
	CompanyID            string          `json:"company_id"`
	TeamID               string          `json:"team_id,omitempty"`
	Title                string          `json:"title"`
	ContractType         string          `json:"contract_type"`
	Description          string          `json:"description,omitempty"`
	IsActive             bool            `json:"is_active"`
	Courses              []SkillResponse `json:"courses,omitempty"`
	ComplementaryCourses []SkillResponse `json:"complementary_courses,omitempty"`
	TechnicalSkills      []SkillResponse `json:"technical_skills,omitempty"`
	BehavioralSkills     []SkillResponse `json:"behavioral_skills,omitempty"`
	Languages            []SkillResponse `json:"languages,omitempty"`
}
