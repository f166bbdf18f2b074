package onboarding

import (
	"context"
	"database/sql"
	"time"

	onboardingerrors "foome-hcm/internal/onboarding/errors"
	"foome-hcm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	CreateTask(ctx context.Context, companyID string, req CreateTaskRequest) (TaskResponse, error)
	GetTasks(ctx context.Context, companyID string) ([]TaskResponse, error)
	DeleteTask(ctx context.Context, companyID, id string) error

	Assign(ctx context.Context, companyID string, req AssignTaskRequest) (AssignmentResponse, error)
	GetAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error)
	Complete(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (AssignmentResponse, error)
	GetOverdue(ctx context.Context, companyID string) ([]AssignmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateTask(ctx context.Context, companyID string, req CreateTaskRequest) (TaskResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TaskResponse{}, onboardingerrors.ErrInvalidCompanyID
	}

	t := &OnboardingTask{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		s.logger.Error("create onboarding task persist failed", zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create onboarding task success", zap.String("task_id", t.ID.String()))
	return mapToTaskResponse(*t), nil
}

func (s *service) GetTasks(ctx context.Context, companyID string) ([]TaskResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, onboardingerrors.ErrInvalidCompanyID
	}

	tasks, err := s.repo.FindTasksByCompany(ctx, companyUUID)
	if err != nil {
		s.logger.Error("get onboarding tasks failed", zap.Error(err))
		return nil, err
	}

	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = mapToTaskResponse(t)
	}
	return res, nil
}

// DeleteTask removes the task and every assignment created from it in one
// transaction.
func (s *service) DeleteTask(ctx context.Context, companyID, id string) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return onboardingerrors.ErrInvalidCompanyID
	}
	taskUUID, err := uuid.Parse(id)
	if err != nil {
		return onboardingerrors.ErrTaskNotFound
	}

	if _, err := s.repo.FindTaskByID(ctx, taskUUID, companyUUID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete onboarding task begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteAssignmentsByTask(ctx, taskUUID); err != nil {
		s.logger.Error("delete onboarding assignments failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteTask(ctx, taskUUID, companyUUID); err != nil {
		s.logger.Error("delete onboarding task failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete onboarding task commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete onboarding task success", zap.String("task_id", id))
	return nil
}

func (s *service) Assign(ctx context.Context, companyID string, req AssignTaskRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrInvalidCompanyID
	}
	taskUUID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrTaskNotFound
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}

	task, err := s.repo.FindTaskByID(ctx, taskUUID, companyUUID)
	if err != nil {
		return AssignmentResponse{}, err
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, employeeUUID, companyUUID)
	if err != nil {
		s.logger.Error("assign onboarding employee check failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	if !ok {
		return AssignmentResponse{}, onboardingerrors.ErrEmployeeNotInCompany
	}

	var due *time.Time
	if req.DueDate != "" {
		if t, err := time.Parse("2006-01-02", req.DueDate); err == nil {
			due = &t
		}
	}

	a := &OnboardingAssignment{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		TaskID:     taskUUID,
		EmployeeID: employeeUUID,
		Status:     AssignmentPending,
		DueDate:    due,
		Notes:      req.Notes,
		Task:       task,
	}

	if err := s.repo.CreateAssignment(ctx, a); err != nil {
		s.logger.Error("assign onboarding persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("assign onboarding success",
		zap.String("request_id", rid),
		zap.String("assignment_id", a.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToAssignmentResponse(*a), nil
}

func (s *service) GetAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, onboardingerrors.ErrInvalidCompanyID
	}

	var employeeFilter *uuid.UUID
	if employeeID != "" {
		employeeUUID, err := uuid.Parse(employeeID)
		if err != nil {
			return nil, onboardingerrors.ErrInvalidEmployeeID
		}
		employeeFilter = &employeeUUID
	}

	assignments, err := s.repo.FindAssignmentsByCompany(ctx, companyUUID, employeeFilter)
	if err != nil {
		s.logger.Error("get onboarding assignments failed", zap.Error(err))
		return nil, err
	}

	res := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = mapToAssignmentResponse(a)
	}
	return res, nil
}

// Complete is allowed for the assignee themselves or any admin, and only
// while the assignment is still pending.
func (s *service) Complete(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (AssignmentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrInvalidCompanyID
	}
	assignmentUUID, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrAssignmentNotFound
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AssignmentResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}

	a, err := s.repo.FindAssignmentByID(ctx, assignmentUUID, companyUUID)
	if err != nil {
		return AssignmentResponse{}, err
	}

	if !actorIsAdmin && a.EmployeeID != actorUUID {
		return AssignmentResponse{}, onboardingerrors.ErrNotAssignee
	}
	if a.Status == AssignmentCompleted {
		return AssignmentResponse{}, onboardingerrors.ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	a.Status = AssignmentCompleted
	a.CompletedBy = &actorUUID
	a.CompletedAt = &now

	if err := s.repo.UpdateAssignmentStatus(ctx, a); err != nil {
		s.logger.Error("complete onboarding persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("complete onboarding success",
		zap.String("assignment_id", id),
		zap.String("actor_id", actorID),
	)
	return mapToAssignmentResponse(*a), nil
}

func (s *service) GetOverdue(ctx context.Context, companyID string) ([]AssignmentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, onboardingerrors.ErrInvalidCompanyID
	}

	assignments, err := s.repo.FindOverdue(ctx, companyUUID)
	if err != nil {
		s.logger.Error("get overdue onboarding failed", zap.Error(err))
		return nil, err
	}

	res := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = mapToAssignmentResponse(a)
	}
	return res, nil
}

func mapToTaskResponse(t OnboardingTask) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
	}
}

func mapToAssignmentResponse(a OnboardingAssignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID.String(),
		CompanyID:  a.CompanyID.String(),
		TaskID:     a.TaskID.String(),
		EmployeeID: a.EmployeeID.String(),
		Status:     a.Status,
		Notes:      a.Notes,
	}
	if a.DueDate != nil {
		resp.DueDate = a.DueDate.Format("2006-01-02")
	}
	if a.CompletedBy != nil {
		resp.CompletedBy = a.CompletedBy.String()
	}
	if a.CompletedAt != nil {
		resp.CompletedAt = a.CompletedAt.Format(time.RFC3339)
	}
	if a.Task != nil {
		t := mapToTaskResponse(*a.Task)
		resp.Task = &t
	}
	return resp
}
