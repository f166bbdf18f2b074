package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"time"

	onboardingerrors "foome-hcm/internal/onboarding/errors"
	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=onboarding_repo.go -destination=mocks/onboarding_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateTask(ctx context.Context, t *OnboardingTask) error
	FindTasksByCompany(ctx context.Context, companyID uuid.UUID) ([]OnboardingTask, error)
	FindTaskByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingTask, error)
	DeleteTask(ctx context.Context, id, companyID uuid.UUID) error

	CreateAssignment(ctx context.Context, a *OnboardingAssignment) error
	FindAssignmentsByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]OnboardingAssignment, error)
	FindAssignmentByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingAssignment, error)
	UpdateAssignmentStatus(ctx context.Context, a *OnboardingAssignment) error
	FindOverdue(ctx context.Context, companyID uuid.UUID) ([]OnboardingAssignment, error)
	DeleteAssignmentsByTask(ctx context.Context, taskID uuid.UUID) error

	EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error)
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

func (r *repository) CreateTask(ctx context.Context, t *OnboardingTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTasksByCompany(ctx context.Context, companyID uuid.UUID) ([]OnboardingTask, error) {
	var tasks []OnboardingTask
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("title asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindTaskByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingTask, error) {
	var t OnboardingTask
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, onboardingerrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) DeleteTask(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&OnboardingTask{}).Error
}

func (r *repository) CreateAssignment(ctx context.Context, a *OnboardingAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAssignmentsByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]OnboardingAssignment, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID)).Preload("Task")
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var assignments []OnboardingAssignment
	err := q.Order("created_at desc").Find(&assignments).Error
	return assignments, err
}

func (r *repository) FindAssignmentByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingAssignment, error) {
	var a OnboardingAssignment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Task").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, onboardingerrors.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateAssignmentStatus(ctx context.Context, a *OnboardingAssignment) error {
	return r.db.WithContext(ctx).
		Model(&OnboardingAssignment{}).
		Scopes(tenant.Scope(a.CompanyID)).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"status":       a.Status,
			"completed_by": a.CompletedBy,
			"completed_at": a.CompletedAt,
		}).Error
}

func (r *repository) FindOverdue(ctx context.Context, companyID uuid.UUID) ([]OnboardingAssignment, error) {
	var assignments []OnboardingAssignment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Task").
		Where("status = ?", AssignmentPending).
		Where("due_date IS NOT NULL AND due_date < ?", time.Now().UTC()).
		Order("due_date asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) DeleteAssignmentsByTask(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&OnboardingAssignment{}).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}
