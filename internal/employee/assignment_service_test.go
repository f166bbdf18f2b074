package employee

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	employeeerrors "foome-hcm/internal/employee/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAssignmentTestService(t *testing.T, assignments *fakeAssignmentRepository, emp *Employee) (Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, companyID, id string) (*Employee, error) {
			return emp, nil
		},
	}

	svc := NewService(db, repo, assignments, &fakeCounter{}, nil, nil)
	return svc, mock
}

func TestReconcileAssignments(t *testing.T) {
	companyID := uuid.New()
	employeeID := uuid.New()
	roleID := uuid.New()
	teamID := uuid.New()
	subteamID := uuid.New()

	emp := &Employee{ID: employeeID, CompanyID: companyID, Status: StatusActive}

	t.Run("success first assignment inserts role team and subteam", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{
			roleBelongs:    true,
			teamBelongs:    true,
			subteamBelongs: true,
		}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID:    roleID.String(),
			TeamID:    teamID.String(),
			SubteamID: subteamID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, roleID.String(), resp.RoleID)
		assert.Len(t, assignments.insertedRoles, 1)
		assert.True(t, assignments.insertedRoles[0].IsCurrent)
		assert.Len(t, assignments.insertedTeams, 1)
		assert.Len(t, assignments.insertedSubteams, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success applying same target twice issues no writes the second time", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{
			roleBelongs:    true,
			teamBelongs:    true,
			subteamBelongs: true,
		}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectCommit()

		req := AssignmentRequest{
			RoleID:    roleID.String(),
			TeamID:    teamID.String(),
			SubteamID: subteamID.String(),
		}

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), req)
		assert.NoError(t, err)
		firstWrites := assignments.writeCount()

		_, err = svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), req)
		assert.NoError(t, err)

		assert.Equal(t, firstWrites, assignments.writeCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success role change reuses the current row", func(t *testing.T) {
		existingRowID := uuid.New()
		oldRoleID := uuid.New()
		assignments := &fakeAssignmentRepository{
			roleBelongs: true,
			currentRole: &RoleAssignment{
				ID:         existingRowID,
				CompanyID:  companyID,
				EmployeeID: employeeID,
				RoleID:     oldRoleID,
				StartDate:  time.Now().UTC().Add(-24 * time.Hour),
				IsCurrent:  true,
			},
		}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID: roleID.String(),
		})

		assert.NoError(t, err)
		assert.Empty(t, assignments.insertedRoles)
		assert.Len(t, assignments.updatedRoles, 1)
		assert.Equal(t, existingRowID, assignments.updatedRoles[0].ID)
		assert.Equal(t, roleID, assignments.updatedRoles[0].RoleID)
		assert.True(t, assignments.updatedRoles[0].IsCurrent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success empty team target removes existing memberships", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{
			roleBelongs: true,
			currentRole: &RoleAssignment{
				ID: uuid.New(), CompanyID: companyID, EmployeeID: employeeID,
				RoleID: roleID, IsCurrent: true,
			},
			teamMember:    &TeamMember{ID: uuid.New(), CompanyID: companyID, TeamID: teamID, EmployeeID: employeeID},
			subteamMember: &SubteamMember{ID: uuid.New(), CompanyID: companyID, SubteamID: subteamID, EmployeeID: employeeID},
		}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID: roleID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, assignments.deletedTeams)
		assert.Equal(t, 1, assignments.deletedSubteams)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative subteam without team is rejected before the transaction", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{roleBelongs: true}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID:    roleID.String(),
			SubteamID: subteamID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrSubteamWithoutTeam)
		assert.Zero(t, assignments.writeCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative role from another company rolls back", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{roleBelongs: false}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID: roleID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotInCompany)
		assert.Zero(t, assignments.writeCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative subteam outside the target team rolls back", func(t *testing.T) {
		assignments := &fakeAssignmentRepository{
			roleBelongs:    true,
			teamBelongs:    true,
			subteamBelongs: false,
		}
		svc, mock := newAssignmentTestService(t, assignments, emp)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.ReconcileAssignments(context.Background(), companyID.String(), employeeID.String(), AssignmentRequest{
			RoleID:    roleID.String(),
			TeamID:    teamID.String(),
			SubteamID: subteamID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrSubteamNotInTeam)
		assert.Empty(t, assignments.insertedSubteams)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
