package employee

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	employeeerrors "foome-hcm/internal/employee/errors"
	"foome-hcm/internal/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdmit(t *testing.T) {
	companyID := uuid.New()

	t.Run("success generates an employee number and writes the outbox event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		var created *Employee
		repo := &fakeRepository{
			emailExistsFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
			createFn: func(ctx context.Context, e *Employee) error {
				created = e
				return nil
			},
		}
		outbox := &fakeOutbox{}

		svc := NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, outbox, nil)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Admit(context.Background(), companyID.String(), AdmitEmployeeRequest{
			FullName:     "Ana Souza",
			Email:        "ana@example.com",
			ContractType: ContractCLT,
			HireDate:     time.Now().UTC().Format("2006-01-02"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000001", resp.EmployeeNumber)
		assert.Equal(t, StatusActive, created.Status)
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, events.EmployeeAdmittedTopic, outbox.created[0].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeRepository{
			emailExistsFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}
		outbox := &fakeOutbox{}

		svc := NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, outbox, nil)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err = svc.Admit(context.Background(), companyID.String(), AdmitEmployeeRequest{
			FullName:     "Ana Souza",
			Email:        "ana@example.com",
			ContractType: ContractCLT,
			HireDate:     "2024-01-15",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
		assert.Empty(t, outbox.created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative malformed hire date", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeRepository{}, &fakeAssignmentRepository{}, &fakeCounter{}, nil, nil)

		_, err = svc.Admit(context.Background(), companyID.String(), AdmitEmployeeRequest{
			FullName:     "Ana Souza",
			Email:        "ana@example.com",
			ContractType: ContractCLT,
			HireDate:     "15/01/2024",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})
}

func TestChangeStatus(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()
	otherID := uuid.New()

	newSvc := func(t *testing.T, updated *string) Service {
		t.Helper()

		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		t.Cleanup(func() { db.Close() })

		repo := &fakeRepository{
			findByIDFn: func(ctx context.Context, cid, id string) (*Employee, error) {
				return &Employee{ID: employeeID, CompanyID: companyID, Status: StatusActive}, nil
			},
			updateStatusFn: func(ctx context.Context, cid, id, status string) error {
				if updated != nil {
					*updated = status
				}
				return nil
			},
		}
		return NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, nil, nil)
	}

	t.Run("success admin changes any employee", func(t *testing.T) {
		var updated string
		svc := newSvc(t, &updated)

		resp, err := svc.ChangeStatus(context.Background(), companyID.String(), otherID.String(), true, employeeID.String(), StatusVacation)

		assert.NoError(t, err)
		assert.Equal(t, StatusVacation, resp.Status)
		assert.Equal(t, StatusVacation, updated)
	})

	t.Run("success employee changes own status", func(t *testing.T) {
		var updated string
		svc := newSvc(t, &updated)

		_, err := svc.ChangeStatus(context.Background(), companyID.String(), employeeID.String(), false, employeeID.String(), StatusSickLeave)

		assert.NoError(t, err)
		assert.Equal(t, StatusSickLeave, updated)
	})

	t.Run("negative member cannot change someone else", func(t *testing.T) {
		svc := newSvc(t, nil)

		_, err := svc.ChangeStatus(context.Background(), companyID.String(), otherID.String(), false, employeeID.String(), StatusVacation)

		assert.ErrorIs(t, err, employeeerrors.ErrStatusChangeForbidden)
	})

	t.Run("negative unknown status", func(t *testing.T) {
		svc := newSvc(t, nil)

		_, err := svc.ChangeStatus(context.Background(), companyID.String(), employeeID.String(), true, employeeID.String(), "retired")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})
}
