package team

import (
	"context"
	"database/sql"

	"foome-hcm/internal/shared/contextutil"
	teamerrors "foome-hcm/internal/team/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TeamResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TeamResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	CreateSubteam(ctx context.Context, companyID, teamID string, req CreateSubteamRequest) (SubteamResponse, error)
	DeleteSubteam(ctx context.Context, companyID, teamID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTeamRequest) (TeamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidCompanyID
	}

	t := &Team{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create team persist failed", zap.Error(err))
		return TeamResponse{}, err
	}

	s.logger.Info("create team success", zap.String("team_id", t.ID.String()))
	return mapToTeamResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TeamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, teamerrors.ErrInvalidCompanyID
	}

	teams, err := s.repo.FindAllByCompany(ctx, companyUUID)
	if err != nil {
		s.logger.Error("get all teams failed", zap.Error(err))
		return nil, err
	}

	res := make([]TeamResponse, len(teams))
	for i, t := range teams {
		res[i] = mapToTeamResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TeamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidCompanyID
	}
	teamUUID, err := uuid.Parse(id)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrTeamNotFound
	}

	t, err := s.repo.FindByIDAndCompany(ctx, teamUUID, companyUUID)
	if err != nil {
		return TeamResponse{}, err
	}
	return mapToTeamResponse(*t), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateTeamRequest) (TeamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidCompanyID
	}
	teamUUID, err := uuid.Parse(id)
	if err != nil {
		return TeamResponse{}, teamerrors.ErrTeamNotFound
	}

	t, err := s.repo.FindByIDAndCompany(ctx, teamUUID, companyUUID)
	if err != nil {
		return TeamResponse{}, err
	}

	t.Name = req.Name
	t.Description = req.Description

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update team persist failed", zap.Error(err))
		return TeamResponse{}, err
	}

	s.logger.Info("update team success", zap.String("team_id", id))
	return mapToTeamResponse(*t), nil
}

// Delete removes the team together with its subteams and every membership
// row pointing at either, so no employee is left attached to a team that no
// longer exists.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return teamerrors.ErrInvalidCompanyID
	}
	teamUUID, err := uuid.Parse(id)
	if err != nil {
		return teamerrors.ErrTeamNotFound
	}

	if _, err := s.repo.FindByIDAndCompany(ctx, teamUUID, companyUUID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete team begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteSubteamMembershipsByTeam(ctx, teamUUID); err != nil {
		s.logger.Error("delete subteam memberships failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteTeamMemberships(ctx, teamUUID); err != nil {
		s.logger.Error("delete team memberships failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteSubteamsByTeam(ctx, teamUUID); err != nil {
		s.logger.Error("delete subteams failed", zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, teamUUID, companyUUID); err != nil {
		s.logger.Error("delete team failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete team commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete team success",
		zap.String("request_id", rid),
		zap.String("team_id", id),
	)
	return nil
}

func (s *service) CreateSubteam(ctx context.Context, companyID, teamID string, req CreateSubteamRequest) (SubteamResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SubteamResponse{}, teamerrors.ErrInvalidCompanyID
	}
	teamUUID, err := uuid.Parse(teamID)
	if err != nil {
		return SubteamResponse{}, teamerrors.ErrTeamNotFound
	}

	if _, err := s.repo.FindByIDAndCompany(ctx, teamUUID, companyUUID); err != nil {
		return SubteamResponse{}, err
	}

	st := &Subteam{
		ID:          uuid.New(),
		TeamID:      teamUUID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.CreateSubteam(ctx, st); err != nil {
		s.logger.Error("create subteam persist failed", zap.Error(err))
		return SubteamResponse{}, err
	}

	s.logger.Info("create subteam success", zap.String("subteam_id", st.ID.String()))
	return mapToSubteamResponse(*st), nil
}

func (s *service) DeleteSubteam(ctx context.Context, companyID, teamID, id string) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return teamerrors.ErrInvalidCompanyID
	}
	teamUUID, err := uuid.Parse(teamID)
	if err != nil {
		return teamerrors.ErrTeamNotFound
	}
	subteamUUID, err := uuid.Parse(id)
	if err != nil {
		return teamerrors.ErrSubteamNotFound
	}

	if _, err := s.repo.FindByIDAndCompany(ctx, teamUUID, companyUUID); err != nil {
		return err
	}
	if _, err := s.repo.FindSubteamByID(ctx, subteamUUID, teamUUID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete subteam begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteSubteamMemberships(ctx, subteamUUID); err != nil {
		s.logger.Error("delete subteam memberships failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteSubteam(ctx, subteamUUID, teamUUID); err != nil {
		s.logger.Error("delete subteam failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete subteam commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete subteam success", zap.String("subteam_id", id))
	return nil
}

func mapToTeamResponse(t Team) TeamResponse {
	resp := TeamResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		Name:        t.Name,
		Description: t.Description,
	}
	for _, st := range t.Subteams {
		resp.Subteams = append(resp.Subteams, mapToSubteamResponse(st))
	}
	return resp
}

func mapToSubteamResponse(st Subteam) SubteamResponse {
	return SubteamResponse{
		ID:          st.ID.String(),
		TeamID:      st.TeamID.String(),
		Name:        st.Name,
		Description: st.Description,
	}
}
