package onboarding

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	onboardingerrors "foome-hcm/internal/onboarding/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeOnboardingRepository struct {
	task           *OnboardingTask
	assignment     *OnboardingAssignment
	employeeExists bool

	steps         []string
	statusUpdates []string
}

func (f *fakeOnboardingRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeOnboardingRepository) CreateTask(ctx context.Context, t *OnboardingTask) error {
	f.task = t
	return nil
}

func (f *fakeOnboardingRepository) FindTasksByCompany(ctx context.Context, companyID uuid.UUID) ([]OnboardingTask, error) {
	if f.task == nil {
		return nil, nil
	}
	return []OnboardingTask{*f.task}, nil
}

func (f *fakeOnboardingRepository) FindTaskByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingTask, error) {
	if f.task == nil {
		return nil, onboardingerrors.ErrTaskNotFound
	}
	return f.task, nil
}

func (f *fakeOnboardingRepository) DeleteTask(ctx context.Context, id, companyID uuid.UUID) error {
	f.steps = append(f.steps, "delete_task")
	f.task = nil
	return nil
}

func (f *fakeOnboardingRepository) CreateAssignment(ctx context.Context, a *OnboardingAssignment) error {
	f.assignment = a
	return nil
}

func (f *fakeOnboardingRepository) FindAssignmentsByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]OnboardingAssignment, error) {
	if f.assignment == nil {
		return nil, nil
	}
	return []OnboardingAssignment{*f.assignment}, nil
}

func (f *fakeOnboardingRepository) FindAssignmentByID(ctx context.Context, id, companyID uuid.UUID) (*OnboardingAssignment, error) {
	if f.assignment == nil {
		return nil, onboardingerrors.ErrAssignmentNotFound
	}
	return f.assignment, nil
}

func (f *fakeOnboardingRepository) UpdateAssignmentStatus(ctx context.Context, a *OnboardingAssignment) error {
	f.statusUpdates = append(f.statusUpdates, a.Status)
	f.assignment = a
	return nil
}

func (f *fakeOnboardingRepository) FindOverdue(ctx context.Context, companyID uuid.UUID) ([]OnboardingAssignment, error) {
	return nil, nil
}

func (f *fakeOnboardingRepository) DeleteAssignmentsByTask(ctx context.Context, taskID uuid.UUID) error {
	f.steps = append(f.steps, "delete_assignments")
	return nil
}

func (f *fakeOnboardingRepository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	return f.employeeExists, nil
}

func pendingAssignment(companyID, employeeID uuid.UUID) *OnboardingAssignment {
	due := time.Now().UTC().Add(72 * time.Hour)
	return &OnboardingAssignment{
		ID:         uuid.New(),
		CompanyID:  companyID,
		TaskID:     uuid.New(),
		EmployeeID: employeeID,
		Status:     AssignmentPending,
		DueDate:    &due,
	}
}

func TestCompleteAssignment(t *testing.T) {
	companyID := uuid.New()
	assigneeID := uuid.New()
	adminID := uuid.New()
	strangerID := uuid.New()

	newSvc := func(t *testing.T, repo *fakeOnboardingRepository) Service {
		t.Helper()

		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		t.Cleanup(func() { db.Close() })
		return NewService(db, repo)
	}

	t.Run("success assignee completes own assignment", func(t *testing.T) {
		repo := &fakeOnboardingRepository{assignment: pendingAssignment(companyID, assigneeID)}
		svc := newSvc(t, repo)

		resp, err := svc.Complete(context.Background(), companyID.String(), assigneeID.String(), false, repo.assignment.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, AssignmentCompleted, resp.Status)
		assert.Equal(t, assigneeID.String(), resp.CompletedBy)
		assert.NotEmpty(t, resp.CompletedAt)
		assert.Equal(t, []string{AssignmentCompleted}, repo.statusUpdates)
	})

	t.Run("success admin completes on behalf of the assignee", func(t *testing.T) {
		repo := &fakeOnboardingRepository{assignment: pendingAssignment(companyID, assigneeID)}
		svc := newSvc(t, repo)

		resp, err := svc.Complete(context.Background(), companyID.String(), adminID.String(), true, repo.assignment.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, AssignmentCompleted, resp.Status)
		assert.Equal(t, adminID.String(), resp.CompletedBy)
	})

	t.Run("negative another member cannot complete it", func(t *testing.T) {
		repo := &fakeOnboardingRepository{assignment: pendingAssignment(companyID, assigneeID)}
		svc := newSvc(t, repo)

		_, err := svc.Complete(context.Background(), companyID.String(), strangerID.String(), false, repo.assignment.ID.String())

		assert.ErrorIs(t, err, onboardingerrors.ErrNotAssignee)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("negative completed assignments stay completed", func(t *testing.T) {
		done := pendingAssignment(companyID, assigneeID)
		done.Status = AssignmentCompleted
		repo := &fakeOnboardingRepository{assignment: done}
		svc := newSvc(t, repo)

		_, err := svc.Complete(context.Background(), companyID.String(), assigneeID.String(), false, done.ID.String())

		assert.ErrorIs(t, err, onboardingerrors.ErrAlreadyCompleted)
		assert.Empty(t, repo.statusUpdates)
	})
}

func TestDeleteTask(t *testing.T) {
	companyID := uuid.New()

	t.Run("success removes assignments before the task", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeOnboardingRepository{
			task: &OnboardingTask{ID: uuid.New(), CompanyID: companyID, Title: "Sign NDA"},
		}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = svc.DeleteTask(context.Background(), companyID.String(), repo.task.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{"delete_assignments", "delete_task"}, repo.steps)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown task", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeOnboardingRepository{})

		err = svc.DeleteTask(context.Background(), companyID.String(), uuid.NewString())

		assert.ErrorIs(t, err, onboardingerrors.ErrTaskNotFound)
	})
}

func TestAssign(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()

	t.Run("success starts pending with a due date", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeOnboardingRepository{
			task:           &OnboardingTask{ID: uuid.New(), CompanyID: companyID, Title: "Sign NDA"},
			employeeExists: true,
		}
		svc := NewService(db, repo)

		resp, err := svc.Assign(context.Background(), companyID.String(), AssignTaskRequest{
			TaskID:     repo.task.ID.String(),
			EmployeeID: employeeID.String(),
			DueDate:    "2026-09-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, AssignmentPending, resp.Status)
		assert.Equal(t, "2026-09-01", resp.DueDate)
		assert.Equal(t, "Sign NDA", resp.Task.Title)
	})

	t.Run("negative employee from another company", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeOnboardingRepository{
			task:           &OnboardingTask{ID: uuid.New(), CompanyID: companyID, Title: "Sign NDA"},
			employeeExists: false,
		}
		svc := NewService(db, repo)

		_, err = svc.Assign(context.Background(), companyID.String(), AssignTaskRequest{
			TaskID:     repo.task.ID.String(),
			EmployeeID: employeeID.String(),
		})

		assert.ErrorIs(t, err, onboardingerrors.ErrEmployeeNotInCompany)
		assert.Nil(t, repo.assignment)
	})
}
