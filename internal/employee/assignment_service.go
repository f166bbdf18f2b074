package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "foome-hcm/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReconcileAssignments diffs the employee's current role/team/subteam
// membership against the submitted target and issues the minimal writes to
// reach it, all inside one transaction. Applying the same target twice is a
// no-op the second time.
//
// Role is mandatory and historized in employee_roles: a missing assignment
// inserts a new is_current row; a different role updates the current row in
// place, so the employee never carries two current rows. Team and subteam
// are plain at-most-one associations: insert, update, or delete depending on
// the target.
func (s *service) ReconcileAssignments(ctx context.Context, companyID, id string, req AssignmentRequest) (AssignmentResponse, error) {
	s.logger.Debug("reconcile assignments requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", id),
		zap.String("role_id", req.RoleID),
		zap.String("team_id", req.TeamID),
		zap.String("subteam_id", req.SubteamID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	roleUUID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrRoleNotInCompany
	}
	if req.SubteamID != "" && req.TeamID == "" {
		return AssignmentResponse{}, employeeerrors.ErrSubteamWithoutTeam
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reconcile assignments begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qassign := s.assignments.WithTx(tx)

	if _, err := qrepo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AssignmentResponse{}, err
	}

	if err := s.reconcileRole(ctx, qassign, companyUUID, employeeUUID, roleUUID); err != nil {
		return AssignmentResponse{}, err
	}
	if err := s.reconcileTeam(ctx, qassign, companyUUID, employeeUUID, req.TeamID); err != nil {
		return AssignmentResponse{}, err
	}
	if err := s.reconcileSubteam(ctx, qassign, companyUUID, employeeUUID, req.TeamID, req.SubteamID); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("reconcile assignments commit failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.invalidateOptionsCache(ctx, companyID)
	s.logger.Info("reconcile assignments success",
		zap.String("employee_id", id),
		zap.String("role_id", req.RoleID),
	)

	return AssignmentResponse{
		EmployeeID: id,
		RoleID:     req.RoleID,
		TeamID:     req.TeamID,
		SubteamID:  req.SubteamID,
	}, nil
}

func (s *service) reconcileRole(
	ctx context.Context,
	repo AssignmentRepository,
	companyID, employeeID, roleID uuid.UUID,
) error {
	belongs, err := repo.RoleBelongsToCompany(ctx, companyID.String(), roleID.String())
	if err != nil {
		return err
	}
	if !belongs {
		return employeeerrors.ErrRoleNotInCompany
	}

	current, err := repo.FindCurrentRole(ctx, companyID.String(), employeeID.String())
	if err != nil {
		return err
	}

	switch {
	case current == nil:
		return repo.InsertRoleAssignment(ctx, &RoleAssignment{
			ID:         uuid.New(),
			CompanyID:  companyID,
			EmployeeID: employeeID,
			RoleID:     roleID,
			StartDate:  time.Now().UTC(),
			IsCurrent:  true,
		})
	case current.RoleID != roleID:
		// Reuse the current row so there is never a moment with two
		// is_current rows for the same employee.
		current.RoleID = roleID
		current.StartDate = time.Now().UTC()
		return repo.UpdateRoleAssignment(ctx, current)
	default:
		return nil
	}
}

func (s *service) reconcileTeam(
	ctx context.Context,
	repo AssignmentRepository,
	companyID, employeeID uuid.UUID,
	targetTeamID string,
) error {
	current, err := repo.FindTeamMembership(ctx, companyID.String(), employeeID.String())
	if err != nil {
		return err
	}

	if targetTeamID == "" {
		if current != nil {
			return repo.DeleteTeamMembership(ctx, companyID.String(), employeeID.String())
		}
		return nil
	}

	teamUUID, err := uuid.Parse(targetTeamID)
	if err != nil {
		return employeeerrors.ErrTeamNotInCompany
	}
	belongs, err := repo.TeamBelongsToCompany(ctx, companyID.String(), targetTeamID)
	if err != nil {
		return err
	}
	if !belongs {
		return employeeerrors.ErrTeamNotInCompany
	}

	switch {
	case current == nil:
		return repo.InsertTeamMembership(ctx, &TeamMember{
			ID:         uuid.New(),
			CompanyID:  companyID,
			TeamID:     teamUUID,
			EmployeeID: employeeID,
		})
	case current.TeamID != teamUUID:
		current.TeamID = teamUUID
		return repo.UpdateTeamMembership(ctx, current)
	default:
		return nil
	}
}

func (s *service) reconcileSubteam(
	ctx context.Context,
	repo AssignmentRepository,
	companyID, employeeID uuid.UUID,
	targetTeamID, targetSubteamID string,
) error {
	current, err := repo.FindSubteamMembership(ctx, companyID.String(), employeeID.String())
	if err != nil {
		return err
	}

	if targetSubteamID == "" {
		if current != nil {
			return repo.DeleteSubteamMembership(ctx, companyID.String(), employeeID.String())
		}
		return nil
	}

	subteamUUID, err := uuid.Parse(targetSubteamID)
	if err != nil {
		return employeeerrors.ErrSubteamNotInTeam
	}
	// Checked server-side: the subteam must sit under the team being
	// assigned, not just any team in the company.
	belongs, err := repo.SubteamBelongsToTeam(ctx, companyID.String(), targetSubteamID, targetTeamID)
	if err != nil {
		return err
	}
	if !belongs {
		return employeeerrors.ErrSubteamNotInTeam
	}

	switch {
	case current == nil:
		return repo.InsertSubteamMembership(ctx, &SubteamMember{
			ID:         uuid.New(),
			CompanyID:  companyID,
			SubteamID:  subteamUUID,
			EmployeeID: employeeID,
		})
	case current.SubteamID != subteamUUID:
		current.SubteamID = subteamUUID
		return repo.UpdateSubteamMembership(ctx, current)
	default:
		return nil
	}
}
