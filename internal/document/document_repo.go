package document

import (
	"context"
	"database/sql"
	"errors"
	"time"

	documenterrors "foome-hcm/internal/document/errors"
	"foome-hcm/internal/shared/connection"
	"foome-hcm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mocks/document_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Document) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]Document, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Document, error)
	UpdateReview(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error
	FindExpiring(ctx context.Context, companyID uuid.UUID, within time.Duration) ([]Document, error)
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

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]Document, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var docs []Document
	err := q.Order("created_at desc").Find(&docs).Error
	return docs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, documenterrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) UpdateReview(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).
		Model(&Document{}).
		Scopes(tenant.Scope(d.CompanyID)).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"status":           d.Status,
			"reviewed_by":      d.ReviewedBy,
			"reviewed_at":      d.ReviewedAt,
			"rejection_reason": d.RejectionReason,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Document{}).Error
}

func (r *repository) FindExpiring(ctx context.Context, companyID uuid.UUID, within time.Duration) ([]Document, error) {
	deadline := time.Now().UTC().Add(within)

	var docs []Document
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", deadline).
		Order("expiration_date asc").
		Find(&docs).Error
	return docs, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND company_id = ? AND deleted_at IS NULL", employeeID, companyID).
		Count(&count).Error
	return count > 0, err
}
