package notification

import (
	"context"

	"foome-hcm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByEmployee(ctx context.Context, companyID, employeeID string) ([]Notification, error)
	MarkRead(ctx context.Context, companyID, employeeID, id string) error
	MarkAllRead(ctx context.Context, companyID, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByEmployee(ctx context.Context, companyID, employeeID string) ([]Notification, error) {
	var list []Notification
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(100).
		Find(&list).Error
	return list, err
}

func (r *repository) MarkRead(ctx context.Context, companyID, employeeID, id string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context, companyID, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("read = ?", false).
		Update("read", true).Error
}
