package timeoff

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/tenant"
	timeofferrors "foome-hcm/internal/timeoff/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timeoff_repo.go -destination=mocks/timeoff_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *TimeOffRequest) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]TimeOffRequest, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*TimeOffRequest, error)
	UpdateDecision(ctx context.Context, t *TimeOffRequest) error
	HasOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error)
	EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error)
	SetEmployeeStatus(ctx context.Context, employeeID, companyID uuid.UUID, status string) error
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

func (r *repository) Create(ctx context.Context, t *TimeOffRequest) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]TimeOffRequest, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var reqs []TimeOffRequest
	err := q.Order("created_at desc").Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*TimeOffRequest, error) {
	var t TimeOffRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, timeofferrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) UpdateDecision(ctx context.Context, t *TimeOffRequest) error {
	return r.db.WithContext(ctx).
		Model(&TimeOffRequest{}).
		Scopes(tenant.Scope(t.CompanyID)).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"status":           t.Status,
			"reviewed_by":      t.ReviewedBy,
			"reviewed_at":      t.ReviewedAt,
			"rejection_reason": t.RejectionReason,
		}).Error
}

// HasOverlapping checks pending and approved requests only; a rejected
// request does not block the period it asked for.
func (r *repository) HasOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TimeOffRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SetEmployeeStatus(ctx context.Context, employeeID, companyID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ?", employeeID, companyID).
		Update("status", status).Error
}
