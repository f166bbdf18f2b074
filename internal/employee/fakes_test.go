package employee

import (
	"context"
	"database/sql"

	"foome-hcm/internal/messaging/kafka"
)

type fakeRepository struct {
	createFn        func(ctx context.Context, e *Employee) error
	findAllFn       func(ctx context.Context, companyID string) ([]Employee, error)
	findOptionsFn   func(ctx context.Context, companyID string) ([]Employee, error)
	findByIDFn      func(ctx context.Context, companyID, id string) (*Employee, error)
	findByUserIDFn  func(ctx context.Context, userID string) (*Employee, error)
	emailExistsFn   func(ctx context.Context, email string) (bool, error)
	updateFn        func(ctx context.Context, e *Employee) error
	updateStatusFn  func(ctx context.Context, companyID, id, status string) error
	deleteFn        func(ctx context.Context, companyID, id string) error
}

func (f *fakeRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, e *Employee) error {
	return f.createFn(ctx, e)
}

func (f *fakeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	return f.findAllFn(ctx, companyID)
}

func (f *fakeRepository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	return f.findOptionsFn(ctx, companyID)
}

func (f *fakeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	return f.findByIDFn(ctx, companyID, id)
}

func (f *fakeRepository) FindByUserID(ctx context.Context, userID string) (*Employee, error) {
	return f.findByUserIDFn(ctx, userID)
}

func (f *fakeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailExistsFn(ctx, email)
}

func (f *fakeRepository) Update(ctx context.Context, e *Employee) error {
	return f.updateFn(ctx, e)
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	return f.updateStatusFn(ctx, companyID, id, status)
}

func (f *fakeRepository) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

// fakeAssignmentRepository records every write so tests can assert exactly
// which statements the reconciler issued.
type fakeAssignmentRepository struct {
	currentRole    *RoleAssignment
	teamMember     *TeamMember
	subteamMember  *SubteamMember
	roleBelongs    bool
	teamBelongs    bool
	subteamBelongs bool

	insertedRoles    []*RoleAssignment
	updatedRoles     []*RoleAssignment
	insertedTeams    []*TeamMember
	updatedTeams     []*TeamMember
	deletedTeams     int
	insertedSubteams []*SubteamMember
	updatedSubteams  []*SubteamMember
	deletedSubteams  int
}

func (f *fakeAssignmentRepository) WithTx(tx *sql.Tx) AssignmentRepository { return f }

func (f *fakeAssignmentRepository) FindCurrentRole(ctx context.Context, companyID, employeeID string) (*RoleAssignment, error) {
	return f.currentRole, nil
}

func (f *fakeAssignmentRepository) InsertRoleAssignment(ctx context.Context, a *RoleAssignment) error {
	f.insertedRoles = append(f.insertedRoles, a)
	f.currentRole = a
	return nil
}

func (f *fakeAssignmentRepository) UpdateRoleAssignment(ctx context.Context, a *RoleAssignment) error {
	f.updatedRoles = append(f.updatedRoles, a)
	f.currentRole = a
	return nil
}

func (f *fakeAssignmentRepository) FindTeamMembership(ctx context.Context, companyID, employeeID string) (*TeamMember, error) {
	return f.teamMember, nil
}

func (f *fakeAssignmentRepository) InsertTeamMembership(ctx context.Context, m *TeamMember) error {
	f.insertedTeams = append(f.insertedTeams, m)
	f.teamMember = m
	return nil
}

func (f *fakeAssignmentRepository) UpdateTeamMembership(ctx context.Context, m *TeamMember) error {
	f.updatedTeams = append(f.updatedTeams, m)
	f.teamMember = m
	return nil
}

func (f *fakeAssignmentRepository) DeleteTeamMembership(ctx context.Context, companyID, employeeID string) error {
	f.deletedTeams++
	f.teamMember = nil
	return nil
}

func (f *fakeAssignmentRepository) FindSubteamMembership(ctx context.Context, companyID, employeeID string) (*SubteamMember, error) {
	return f.subteamMember, nil
}

func (f *fakeAssignmentRepository) InsertSubteamMembership(ctx context.Context, m *SubteamMember) error {
	f.insertedSubteams = append(f.insertedSubteams, m)
	f.subteamMember = m
	return nil
}

func (f *fakeAssignmentRepository) UpdateSubteamMembership(ctx context.Context, m *SubteamMember) error {
	f.updatedSubteams = append(f.updatedSubteams, m)
	f.subteamMember = m
	return nil
}

func (f *fakeAssignmentRepository) DeleteSubteamMembership(ctx context.Context, companyID, employeeID string) error {
	f.deletedSubteams++
	f.subteamMember = nil
	return nil
}

func (f *fakeAssignmentRepository) RoleBelongsToCompany(ctx context.Context, companyID, roleID string) (bool, error) {
	return f.roleBelongs, nil
}

func (f *fakeAssignmentRepository) TeamBelongsToCompany(ctx context.Context, companyID, teamID string) (bool, error) {
	return f.teamBelongs, nil
}

func (f *fakeAssignmentRepository) SubteamBelongsToTeam(ctx context.Context, companyID, subteamID, teamID string) (bool, error) {
	return f.subteamBelongs, nil
}

func (f *fakeAssignmentRepository) writeCount() int {
	return len(f.insertedRoles) + len(f.updatedRoles) +
		len(f.insertedTeams) + len(f.updatedTeams) + f.deletedTeams +
		len(f.insertedSubteams) + len(f.updatedSubteams) + f.deletedSubteams
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
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
