package employee

import (
	"context"
	"database/sql"
	"errors"

	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type AssignmentRepository interface {
	WithTx(tx *sql.Tx) AssignmentRepository

	FindCurrentRole(ctx context.Context, companyID, employeeID string) (*RoleAssignment, error)
	InsertRoleAssignment(ctx context.Context, a *RoleAssignment) error
	UpdateRoleAssignment(ctx context.Context, a *RoleAssignment) error

	FindTeamMembership(ctx context.Context, companyID, employeeID string) (*TeamMember, error)
	InsertTeamMembership(ctx context.Context, m *TeamMember) error
	UpdateTeamMembership(ctx context.Context, m *TeamMember) error
	DeleteTeamMembership(ctx context.Context, companyID, employeeID string) error

	FindSubteamMembership(ctx context.Context, companyID, employeeID string) (*SubteamMember, error)
	InsertSubteamMembership(ctx context.Context, m *SubteamMember) error
	UpdateSubteamMembership(ctx context.Context, m *SubteamMember) error
	DeleteSubteamMembership(ctx context.Context, companyID, employeeID string) error

	RoleBelongsToCompany(ctx context.Context, companyID, roleID string) (bool, error)
	TeamBelongsToCompany(ctx context.Context, companyID, teamID string) (bool, error)
	SubteamBelongsToTeam(ctx context.Context, companyID, subteamID, teamID string) (bool, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) WithTx(tx *sql.Tx) AssignmentRepository {
	return &assignmentRepository{db: connection.TxSession(r.db, tx)}
}

// FindCurrentRole returns nil (no error) when the employee has no current
// assignment, so the reconciler can branch on presence directly.
func (r *assignmentRepository) FindCurrentRole(ctx context.Context, companyID, employeeID string) (*RoleAssignment, error) {
	var a RoleAssignment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("is_current = ?", true).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) InsertRoleAssignment(ctx context.Context, a *RoleAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepository) UpdateRoleAssignment(ctx context.Context, a *RoleAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assignmentRepository) FindTeamMembership(ctx context.Context, companyID, employeeID string) (*TeamMember, error) {
	var m TeamMember
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *assignmentRepository) InsertTeamMembership(ctx context.Context, m *TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *assignmentRepository) UpdateTeamMembership(ctx context.Context, m *TeamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *assignmentRepository) DeleteTeamMembership(ctx context.Context, companyID, employeeID string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&TeamMember{}, "employee_id = ?", employeeID).Error
}

func (r *assignmentRepository) FindSubteamMembership(ctx context.Context, companyID, employeeID string) (*SubteamMember, error) {
	var m SubteamMember
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *assignmentRepository) InsertSubteamMembership(ctx context.Context, m *SubteamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *assignmentRepository) UpdateSubteamMembership(ctx context.Context, m *SubteamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *assignmentRepository) DeleteSubteamMembership(ctx context.Context, companyID, employeeID string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SubteamMember{}, "employee_id = ?", employeeID).Error
}

func (r *assignmentRepository) RoleBelongsToCompany(ctx context.Context, companyID, roleID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("roles").
		Where("id = ?", roleID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) TeamBelongsToCompany(ctx context.Context, companyID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("id = ?", teamID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) SubteamBelongsToTeam(ctx context.Context, companyID, subteamID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("subteams").
		Where("id = ?", subteamID).
		Where("team_id = ?", teamID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
