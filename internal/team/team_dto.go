package team

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateSubteamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type SubteamResponse struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TeamResponse struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"company_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Subteams    []SubteamResponse `json:"subteams,omitempty"`
}
