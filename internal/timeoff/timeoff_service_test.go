package timeoff

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"foome-hcm/internal/employee"
	"foome-hcm/internal/events"
	"foome-hcm/internal/messaging/kafka"
	timeofferrors "foome-hcm/internal/timeoff/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTimeOffRepository struct {
	request        *TimeOffRequest
	overlap        bool
	employeeExists bool

	statusUpdates  []string
	employeeStatus string
}

func (f *fakeTimeOffRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeTimeOffRepository) Create(ctx context.Context, t *TimeOffRequest) error {
	f.request = t
	return nil
}

func (f *fakeTimeOffRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID, employeeID *uuid.UUID) ([]TimeOffRequest, error) {
	if f.request == nil {
		return nil, nil
	}
	return []TimeOffRequest{*f.request}, nil
}

func (f *fakeTimeOffRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*TimeOffRequest, error) {
	if f.request == nil {
		return nil, timeofferrors.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeTimeOffRepository) UpdateDecision(ctx context.Context, t *TimeOffRequest) error {
	f.statusUpdates = append(f.statusUpdates, t.Status)
	f.request = t
	return nil
}

func (f *fakeTimeOffRepository) HasOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	return f.overlap, nil
}

func (f *fakeTimeOffRepository) EmployeeBelongsToCompany(ctx context.Context, employeeID, companyID uuid.UUID) (bool, error) {
	return f.employeeExists, nil
}

func (f *fakeTimeOffRepository) SetEmployeeStatus(ctx context.Context, employeeID, companyID uuid.UUID, status string) error {
	f.employeeStatus = status
	return nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func pendingRequest(companyID, employeeID uuid.UUID, kind string) *TimeOffRequest {
	return &TimeOffRequest{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Type:       kind,
		Status:     StatusPending,
		StartDate:  time.Now().UTC(),
		EndDate:    time.Now().UTC().Add(5 * 24 * time.Hour),
		TotalDays:  6,
	}
}

func TestDecideTimeOff(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()
	reviewerID := uuid.New()

	t.Run("success approving vacation flips the employee status in the same transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{request: pendingRequest(companyID, employeeID, TypeVacation)}
		outbox := &fakeOutbox{}
		svc := NewService(db, repo, outbox)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Approve(context.Background(), companyID.String(), reviewerID.String(), repo.request.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
		assert.Equal(t, employee.StatusVacation, repo.employeeStatus)
		assert.Len(t, outbox.created, 1)
		assert.Equal(t, events.TimeOffDecidedTopic, outbox.created[0].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success approving sick leave leaves employee status alone", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{request: pendingRequest(companyID, employeeID, TypeSickLeave)}
		svc := NewService(db, repo, &fakeOutbox{})

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Approve(context.Background(), companyID.String(), reviewerID.String(), repo.request.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
		assert.Empty(t, repo.employeeStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success rejecting records the reason", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{request: pendingRequest(companyID, employeeID, TypeVacation)}
		svc := NewService(db, repo, &fakeOutbox{})

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Reject(context.Background(), companyID.String(), reviewerID.String(), repo.request.ID.String(), "peak season")

		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, resp.Status)
		assert.Equal(t, "peak season", resp.RejectionReason)
		assert.Empty(t, repo.employeeStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative decided requests are immutable", func(t *testing.T) {
		for _, status := range []string{StatusApproved, StatusRejected} {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock: %v", err)
			}

			req := pendingRequest(companyID, employeeID, TypeVacation)
			req.Status = status
			repo := &fakeTimeOffRepository{request: req}
			svc := NewService(db, repo, &fakeOutbox{})

			mock.ExpectBegin()
			mock.ExpectRollback()

			_, err = svc.Approve(context.Background(), companyID.String(), reviewerID.String(), req.ID.String())

			assert.ErrorIs(t, err, timeofferrors.ErrAlreadyDecided)
			assert.Empty(t, repo.statusUpdates)
			assert.NoError(t, mock.ExpectationsWereMet())
			db.Close()
		}
	})

	t.Run("negative reject without reason", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{request: pendingRequest(companyID, employeeID, TypeVacation)}
		svc := NewService(db, repo, &fakeOutbox{})

		_, err = svc.Reject(context.Background(), companyID.String(), reviewerID.String(), repo.request.ID.String(), "")

		assert.ErrorIs(t, err, timeofferrors.ErrRejectionReasonRequired)
	})
}

func TestGetTimeOffByID(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()
	colleagueID := uuid.New()
	adminID := uuid.New()

	newSvc := func(t *testing.T) (Service, *TimeOffRequest) {
		t.Helper()

		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		t.Cleanup(func() { db.Close() })

		req := pendingRequest(companyID, employeeID, TypeVacation)
		return NewService(db, &fakeTimeOffRepository{request: req}, &fakeOutbox{}), req
	}

	t.Run("success owner reads own request", func(t *testing.T) {
		svc, req := newSvc(t)

		resp, err := svc.GetByID(context.Background(), companyID.String(), employeeID.String(), false, req.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, req.ID.String(), resp.ID)
	})

	t.Run("success admin reads anyone's request", func(t *testing.T) {
		svc, req := newSvc(t)

		_, err := svc.GetByID(context.Background(), companyID.String(), adminID.String(), true, req.ID.String())

		assert.NoError(t, err)
	})

	t.Run("negative a colleague's request is not acknowledged", func(t *testing.T) {
		svc, req := newSvc(t)

		_, err := svc.GetByID(context.Background(), companyID.String(), colleagueID.String(), false, req.ID.String())

		assert.ErrorIs(t, err, timeofferrors.ErrRequestNotFound)
	})
}

func TestCreateTimeOff(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()

	t.Run("success counts both endpoints", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{employeeExists: true}
		svc := NewService(db, repo, &fakeOutbox{})

		resp, err := svc.Create(context.Background(), companyID.String(), CreateTimeOffRequest{
			EmployeeID: employeeID.String(),
			Type:       TypeVacation,
			StartDate:  "2025-03-10",
			EndDate:    "2025-03-14",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, StatusPending, resp.Status)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTimeOffRepository{employeeExists: true, overlap: true}
		svc := NewService(db, repo, &fakeOutbox{})

		_, err = svc.Create(context.Background(), companyID.String(), CreateTimeOffRequest{
			EmployeeID: employeeID.String(),
			Type:       TypeVacation,
			StartDate:  "2025-03-10",
			EndDate:    "2025-03-14",
		})

		assert.ErrorIs(t, err, timeofferrors.ErrOverlappingRequest)
	})

	t.Run("negative end before start", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeTimeOffRepository{employeeExists: true}, &fakeOutbox{})

		_, err = svc.Create(context.Background(), companyID.String(), CreateTimeOffRequest{
			EmployeeID: employeeID.String(),
			Type:       TypeVacation,
			StartDate:  "2025-03-14",
			EndDate:    "2025-03-10",
		})

		assert.ErrorIs(t, err, timeofferrors.ErrInvalidDateRange)
	})

	t.Run("negative employee from another company", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeTimeOffRepository{employeeExists: false}, &fakeOutbox{})

		_, err = svc.Create(context.Background(), companyID.String(), CreateTimeOffRequest{
			EmployeeID: employeeID.String(),
			Type:       TypeVacation,
			StartDate:  "2025-03-10",
			EndDate:    "2025-03-14",
		})

		assert.ErrorIs(t, err, timeofferrors.ErrEmployeeNotInCompany)
	})
}
