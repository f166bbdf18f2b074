package role

import (
	"context"
	"database/sql"
	"errors"

	roleerrors "foome-hcm/internal/role/errors"
	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mocks/role_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Role) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Role, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Role, error)
	Update(ctx context.Context, r *Role) error
	TeamBelongsToCompany(ctx context.Context, teamID, companyID uuid.UUID) (bool, error)

	CountCurrentAssignments(ctx context.Context, roleID uuid.UUID) (int64, error)
	ReplaceChildren(ctx context.Context, r *Role) error
	DeleteChildren(ctx context.Context, roleID uuid.UUID) error
	DeleteHistoricalAssignments(ctx context.Context, roleID uuid.UUID) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.TxSession(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Courses").
		Preload("ComplementaryCourses").
		Preload("TechnicalSkills").
		Preload("BehavioralSkills").
		Preload("Languages").
		Order("title asc").
		Find(&roles).Error
	return roles, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Courses").
		Preload("ComplementaryCourses").
		Preload("TechnicalSkills").
		Preload("BehavioralSkills").
		Preload("Languages").
		First(&role, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, roleerrors.ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).
		Model(&Role{}).
		Scopes(tenant.Scope(role.CompanyID)).
		Where("id = ?", role.ID).
		Updates(map[string]interface{}{
			"title":         role.Title,
			"contract_type": role.ContractType,
			"description":   role.Description,
			"team_id":       role.TeamID,
			"is_active":     role.IsActive,
		}).Error
}

func (r *repository) TeamBelongsToCompany(ctx context.Context, teamID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", teamID, companyID).
		Count(&count).Error
	return count > 0, err
}

// CountCurrentAssignments counts employees whose current role row points at
// this role. A non-zero count blocks deletion.
func (r *repository) CountCurrentAssignments(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employee_roles").
		Where("role_id = ? AND is_current = true", roleID).
		Count(&count).Error
	return count, err
}

// ReplaceChildren rewrites every requirement collection for the role.
func (r *repository) ReplaceChildren(ctx context.Context, role *Role) error {
	if err := r.DeleteChildren(ctx, role.ID); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)
	if len(role.Courses) > 0 {
		if err := db.Create(&role.Courses).Error; err != nil {
			return err
		}
	}
	if len(role.ComplementaryCourses) > 0 {
		if err := db.Create(&role.ComplementaryCourses).Error; err != nil {
			return err
		}
	}
	if len(role.TechnicalSkills) > 0 {
		if err := db.Create(&role.TechnicalSkills).Error; err != nil {
			return err
		}
	}
	if len(role.BehavioralSkills) > 0 {
		if err := db.Create(&role.BehavioralSkills).Error; err != nil {
			return err
		}
	}
	if len(role.Languages) > 0 {
		if err := db.Create(&role.Languages).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteChildren removes the five requirement tables for the role, children
// before parent so a failure never leaves orphan rows behind a deleted role.
func (r *repository) DeleteChildren(ctx context.Context, roleID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("role_id = ?", roleID).Delete(&Language{}).Error; err != nil {
		return err
	}
	if err := db.Where("role_id = ?", roleID).Delete(&BehavioralSkill{}).Error; err != nil {
		return err
	}
	if err := db.Where("role_id = ?", roleID).Delete(&TechnicalSkill{}).Error; err != nil {
		return err
	}
	if err := db.Where("role_id = ?", roleID).Delete(&ComplementaryCourse{}).Error; err != nil {
		return err
	}
	if err := db.Where("role_id = ?", roleID).Delete(&Course{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *repository) DeleteHistoricalAssignments(ctx context.Context, roleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM employee_roles WHERE role_id = ? AND is_current = false", roleID).Error
}

func (r *repository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Role{}).Error
}
