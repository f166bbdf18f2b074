package role

import (
	"context"
	"database/sql"

	roleerrors "foome-hcm/internal/role/errors"
	"foome-hcm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context, companyID string) ([]RoleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RoleResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create role requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("title", req.Title),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidCompanyID
	}

	r := &Role{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		Title:        req.Title,
		ContractType: req.ContractType,
		Description:  req.Description,
		IsActive:     true,
	}

	if req.TeamID != "" {
		teamUUID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return RoleResponse{}, roleerrors.ErrInvalidTeamID
		}
		ok, err := s.repo.TeamBelongsToCompany(ctx, teamUUID, companyUUID)
		if err != nil {
			s.logger.Error("create role team check failed", zap.Error(err))
			return RoleResponse{}, err
		}
		if !ok {
			return RoleResponse{}, roleerrors.ErrTeamNotInCompany
		}
		r.TeamID = &teamUUID
	}

	attachChildren(r, req)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create role begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, r); err != nil {
		s.logger.Error("create role persist failed", zap.Error(err))
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create role commit failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("create role success",
		zap.String("request_id", rid),
		zap.String("role_id", r.ID.String()),
	)
	return mapToRoleResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]RoleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, roleerrors.ErrInvalidCompanyID
	}

	roles, err := s.repo.FindAllByCompany(ctx, companyUUID)
	if err != nil {
		s.logger.Error("get all roles failed", zap.Error(err))
		return nil, err
	}

	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToRoleResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RoleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidCompanyID
	}
	roleUUID, err := uuid.Parse(id)
	if err != nil {
		return RoleResponse{}, roleerrors.ErrRoleNotFound
	}

	r, err := s.repo.FindByIDAndCompany(ctx, roleUUID, companyUUID)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapToRoleResponse(*r), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateRoleRequest) (RoleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidCompanyID
	}
	roleUUID, err := uuid.Parse(id)
	if err != nil {
		return RoleResponse{}, roleerrors.ErrRoleNotFound
	}

	r, err := s.repo.FindByIDAndCompany(ctx, roleUUID, companyUUID)
	if err != nil {
		return RoleResponse{}, err
	}

	r.Title = req.Title
	r.ContractType = req.ContractType
	r.Description = req.Description
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}

	if req.TeamID != "" {
		teamUUID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return RoleResponse{}, roleerrors.ErrInvalidTeamID
		}
		ok, err := s.repo.TeamBelongsToCompany(ctx, teamUUID, companyUUID)
		if err != nil {
			return RoleResponse{}, err
		}
		if !ok {
			return RoleResponse{}, roleerrors.ErrTeamNotInCompany
		}
		r.TeamID = &teamUUID
	} else {
		r.TeamID = nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, r); err != nil {
		s.logger.Error("update role persist failed", zap.Error(err))
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update role commit failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("update role success", zap.String("role_id", id))
	return mapToRoleResponse(*r), nil
}

// Delete removes a role and everything keyed to it. It refuses while any
// employee still holds the role as their current assignment.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return roleerrors.ErrInvalidCompanyID
	}
	roleUUID, err := uuid.Parse(id)
	if err != nil {
		return roleerrors.ErrRoleNotFound
	}

	if _, err := s.repo.FindByIDAndCompany(ctx, roleUUID, companyUUID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete role begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// The guard runs inside the transaction so a concurrent assignment
	// cannot slip in between the check and the delete.
	count, err := qtx.CountCurrentAssignments(ctx, roleUUID)
	if err != nil {
		s.logger.Error("delete role assignment count failed", zap.Error(err))
		return err
	}
	if count > 0 {
		s.logger.Warn("delete role refused, employees still assigned",
			zap.String("role_id", id),
			zap.Int64("assigned", count),
		)
		return roleerrors.ErrRoleInUse
	}

	if err := qtx.DeleteChildren(ctx, roleUUID); err != nil {
		s.logger.Error("delete role children failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteHistoricalAssignments(ctx, roleUUID); err != nil {
		s.logger.Error("delete role historical assignments failed", zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, roleUUID, companyUUID); err != nil {
		s.logger.Error("delete role failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete role commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete role success",
		zap.String("request_id", rid),
		zap.String("role_id", id),
	)
	return nil
}

func attachChildren(r *Role, req CreateRoleRequest) {
	for _, name := range req.Courses {
		r.Courses = append(r.Courses, Course{ID: uuid.New(), RoleID: r.ID, Name: name})
	}
	for _, name := range req.ComplementaryCourses {
		r.ComplementaryCourses = append(r.ComplementaryCourses, ComplementaryCourse{ID: uuid.New(), RoleID: r.ID, Name: name})
	}
	for _, in := range req.TechnicalSkills {
		r.TechnicalSkills = append(r.TechnicalSkills, TechnicalSkill{ID: uuid.New(), RoleID: r.ID, Name: in.Name, Level: in.Level})
	}
	for _, name := range req.BehavioralSkills {
		r.BehavioralSkills = append(r.BehavioralSkills, BehavioralSkill{ID: uuid.New(), RoleID: r.ID, Name: name})
	}
	for _, in := range req.Languages {
		r.Languages = append(r.Languages, Language{ID: uuid.New(), RoleID: r.ID, Name: in.Name, Level: in.Level})
	}
}

func mapToRoleResponse(r Role) RoleResponse {
	resp := RoleResponse{
		ID:           r.ID.String(),
		CompanyID:    r.CompanyID.String(),
		Title:        r.Title,
		ContractType: r.ContractType,
		Description:  r.Description,
		IsActive:     r.IsActive,
	}
	if r.TeamID != nil {
		resp.TeamID = r.TeamID.String()
	}
	for _, c := range r.Courses {
		resp.Courses = append(resp.Courses, SkillResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range r.ComplementaryCourses {
		resp.ComplementaryCourses = append(resp.ComplementaryCourses, SkillResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, sk := range r.TechnicalSkills {
		resp.TechnicalSkills = append(resp.TechnicalSkills, SkillResponse{ID: sk.ID.String(), Name: sk.Name, Level: sk.Level})
	}
	for _, sk := range r.BehavioralSkills {
		resp.BehavioralSkills = append(resp.BehavioralSkills, SkillResponse{ID: sk.ID.String(), Name: sk.Name})
	}
	for _, l := range r.Languages {
		resp.Languages = append(resp.Languages, SkillResponse{ID: l.ID.String(), Name: l.Name, Level: l.Level})
	}
	return resp
}
