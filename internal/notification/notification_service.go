package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Notify(ctx context.Context, companyID, employeeID, kind, title, body string) error
	ListForEmployee(ctx context.Context, companyID, employeeID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, companyID, employeeID, id string) error
	MarkAllRead(ctx context.Context, companyID, employeeID string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Notify(ctx context.Context, companyID, employeeID, kind, title, body string) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return err
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}

	n := &Notification{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Kind:       kind,
		Title:      title,
		Body:       body,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create notification failed",
			zap.String("employee_id", employeeID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("notification created",
		zap.String("notification_id", n.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("kind", kind),
	)
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, companyID, employeeID string) ([]NotificationResponse, error) {
	list, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(list))
	for i, n := range list {
		resp[i] = NotificationResponse{
			ID:        n.ID.String(),
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, companyID, employeeID, id string) error {
	return s.repo.MarkRead(ctx, companyID, employeeID, id)
}

func (s *service) MarkAllRead(ctx context.Context, companyID, employeeID string) error {
	return s.repo.MarkAllRead(ctx, companyID, employeeID)
}
