package timeoff

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"foome-hcm/internal/employee"
	"foome-hcm/internal/events"
	"foome-hcm/internal/messaging/kafka"
	"foome-hcm/internal/shared/contextutil"
	timeofferrors "foome-hcm/internal/timeoff/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=timeoff_service.go -destination=mock/timeoff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateTimeOffRequest) (TimeOffResponse, error)
	GetAll(ctx context.Context, companyID, employeeID string) ([]TimeOffResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (TimeOffResponse, error)
	Approve(ctx context.Context, companyID, reviewerID, id string) (TimeOffResponse, error)
	Reject(ctx context.Context, companyID, reviewerID, id, reason string) (TimeOffResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timeoff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeoff.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTimeOffRequest) (TimeOffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create time off requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidEmployeeID
	}
	if !ValidType(req.Type) {
		return TimeOffResponse{}, timeofferrors.ErrInvalidType
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return TimeOffResponse{}, timeofferrors.ErrInvalidDateRange
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, employeeUUID, companyUUID)
	if err != nil {
		s.logger.Error("create time off employee check failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	if !ok {
		return TimeOffResponse{}, timeofferrors.ErrEmployeeNotInCompany
	}

	overlap, err := s.repo.HasOverlapping(ctx, employeeUUID, start, end)
	if err != nil {
		s.logger.Error("create time off overlap check failed", zap.Error(err))
		return TimeOffResponse{}, err
	}
	if overlap {
		return TimeOffResponse{}, timeofferrors.ErrOverlappingRequest
	}

	t := &TimeOffRequest{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Type:       req.Type,
		Status:     StatusPending,
		StartDate:  start,
		EndDate:    end,
		// Both endpoints count: a Monday-to-Friday request is five days.
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
		Reason:    req.Reason,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create time off persist failed", zap.Error(err))
		return TimeOffResponse{}, err
	}

	s.logger.Info("create time off success",
		zap.String("request_id", rid),
		zap.String("timeoff_id", t.ID.String()),
	)
	return mapToTimeOffResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID, employeeID string) ([]TimeOffResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, timeofferrors.ErrInvalidCompanyID
	}

	var employeeFilter *uuid.UUID
	if employeeID != "" {
		employeeUUID, err := uuid.Parse(employeeID)
		if err != nil {
			return nil, timeofferrors.ErrInvalidEmployeeID
		}
		employeeFilter = &employeeUUID
	}

	reqs, err := s.repo.FindAllByCompany(ctx, companyUUID, employeeFilter)
	if err != nil {
		s.logger.Error("get all time off failed", zap.Error(err))
		return nil, err
	}

	res := make([]TimeOffResponse, len(reqs))
	for i, t := range reqs {
		res[i] = mapToTimeOffResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (TimeOffResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidCompanyID
	}
	reqUUID, err := uuid.Parse(id)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrRequestNotFound
	}

	t, err := s.repo.FindByIDAndCompany(ctx, reqUUID, companyUUID)
	if err != nil {
		return TimeOffResponse{}, err
	}

	// Members only see their own requests; a colleague's request is not
	// acknowledged to exist.
	if !actorIsAdmin && t.EmployeeID.String() != actorID {
		return TimeOffResponse{}, timeofferrors.ErrRequestNotFound
	}
	return mapToTimeOffResponse(*t), nil
}

func (s *service) Approve(ctx context.Context, companyID, reviewerID, id string) (TimeOffResponse, error) {
	return s.decide(ctx, companyID, reviewerID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, companyID, reviewerID, id, reason string) (TimeOffResponse, error) {
	if reason == "" {
		return TimeOffResponse{}, timeofferrors.ErrRejectionReasonRequired
	}
	return s.decide(ctx, companyID, reviewerID, id, StatusRejected, reason)
}

func (s *service) decide(ctx context.Context, companyID, reviewerID, id, status, reason string) (TimeOffResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidCompanyID
	}
	reqUUID, err := uuid.Parse(id)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrRequestNotFound
	}
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return TimeOffResponse{}, timeofferrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide time off begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TimeOffResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByIDAndCompany(ctx, reqUUID, companyUUID)
	if err != nil {
		return TimeOffResponse{}, err
	}

	// Approved and rejected are terminal.
	if Terminal(t.Status) {
		return TimeOffResponse{}, timeofferrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	t.Status = status
	t.ReviewedBy = &reviewerUUID
	t.ReviewedAt = &now
	t.RejectionReason = reason

	if err := qtx.UpdateDecision(ctx, t); err != nil {
		s.logger.Error("decide time off persist failed", zap.Error(err))
		return TimeOffResponse{}, err
	}

	// Approving vacation flips the employee to vacation status. It rides the
	// same transaction: either both rows change or neither does.
	if status == StatusApproved && t.Type == TypeVacation {
		if err := qtx.SetEmployeeStatus(ctx, t.EmployeeID, companyUUID, employee.StatusVacation); err != nil {
			s.logger.Error("decide time off set employee status failed", zap.Error(err))
			return TimeOffResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.TimeOffDecidedEvent{
			EventType:   "timeoff_decided",
			RequestID:   rid,
			TimeOffID:   t.ID.String(),
			CompanyID:   companyID,
			EmployeeID:  t.EmployeeID.String(),
			TimeOffType: t.Type,
			Status:      status,
			DecidedBy:   reviewerID,
			OccurredAt:  now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return TimeOffResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "timeoff",
			AggregateID:   t.ID.String(),
			EventType:     event.EventType,
			Topic:         events.TimeOffDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide time off outbox persist failed", zap.Error(err))
			return TimeOffResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide time off commit failed", zap.String("request_id", rid), zap.Error(err))
		return TimeOffResponse{}, err
	}

	s.logger.Info("decide time off success",
		zap.String("request_id", rid),
		zap.String("timeoff_id", id),
		zap.String("status", status),
	)
	return mapToTimeOffResponse(*t), nil
}

func mapToTimeOffResponse(t TimeOffRequest) TimeOffResponse {
	resp := TimeOffResponse{
		ID:              t.ID.String(),
		CompanyID:       t.CompanyID.String(),
		EmployeeID:      t.EmployeeID.String(),
		Type:            t.Type,
		Status:          t.Status,
		StartDate:       t.StartDate.Format("2006-01-02"),
		EndDate:         t.EndDate.Format("2006-01-02"),
		TotalDays:       t.TotalDays,
		Reason:          t.Reason,
		RejectionReason: t.RejectionReason,
	}
	if t.ReviewedBy != nil {
		resp.ReviewedBy = t.ReviewedBy.String()
	}
	if t.ReviewedAt != nil {
		resp.ReviewedAt = t.ReviewedAt.Format(time.RFC3339)
	}
	return resp
}
