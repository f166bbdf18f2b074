package team

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	teamerrors "foome-hcm/internal/team/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTeamRepository struct {
	team    *Team
	subteam *Subteam

	steps []string
}

func (f *fakeTeamRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeTeamRepository) Create(ctx context.Context, t *Team) error {
	f.team = t
	return nil
}

func (f *fakeTeamRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Team, error) {
	if f.team == nil {
		return nil, nil
	}
	return []Team{*f.team}, nil
}

func (f *fakeTeamRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Team, error) {
	if f.team == nil {
		return nil, teamerrors.ErrTeamNotFound
	}
	return f.team, nil
}

func (f *fakeTeamRepository) Update(ctx context.Context, t *Team) error {
	f.team = t
	return nil
}

func (f *fakeTeamRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	f.steps = append(f.steps, "delete_team")
	f.team = nil
	return nil
}

func (f *fakeTeamRepository) CreateSubteam(ctx context.Context, st *Subteam) error {
	f.subteam = st
	return nil
}

func (f *fakeTeamRepository) FindSubteamByID(ctx context.Context, id, teamID uuid.UUID) (*Subteam, error) {
	if f.subteam == nil {
		return nil, teamerrors.ErrSubteamNotFound
	}
	return f.subteam, nil
}

func (f *fakeTeamRepository) DeleteSubteam(ctx context.Context, id, teamID uuid.UUID) error {
	f.steps = append(f.steps, "delete_subteam")
	f.subteam = nil
	return nil
}

func (f *fakeTeamRepository) DeleteTeamMemberships(ctx context.Context, teamID uuid.UUID) error {
	f.steps = append(f.steps, "delete_team_memberships")
	return nil
}

func (f *fakeTeamRepository) DeleteSubteamMemberships(ctx context.Context, subteamID uuid.UUID) error {
	f.steps = append(f.steps, "delete_subteam_memberships")
	return nil
}

func (f *fakeTeamRepository) DeleteSubteamMembershipsByTeam(ctx context.Context, teamID uuid.UUID) error {
	f.steps = append(f.steps, "delete_subteam_memberships_by_team")
	return nil
}

func (f *fakeTeamRepository) DeleteSubteamsByTeam(ctx context.Context, teamID uuid.UUID) error {
	f.steps = append(f.steps, "delete_subteams")
	return nil
}

func TestDeleteTeam(t *testing.T) {
	companyID := uuid.New()
	teamID := uuid.New()

	t.Run("success removes memberships and subteams before the team", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTeamRepository{
			team: &Team{ID: teamID, CompanyID: companyID, Name: "Platform"},
		}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = svc.Delete(context.Background(), companyID.String(), teamID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{
			"delete_subteam_memberships_by_team",
			"delete_team_memberships",
			"delete_subteams",
			"delete_team",
		}, repo.steps)
		assert.Nil(t, repo.team)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown team", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeTeamRepository{})

		err = svc.Delete(context.Background(), companyID.String(), teamID.String())

		assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)
	})
}

func TestDeleteSubteam(t *testing.T) {
	companyID := uuid.New()
	teamID := uuid.New()
	subteamID := uuid.New()

	t.Run("success removes memberships before the subteam", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTeamRepository{
			team:    &Team{ID: teamID, CompanyID: companyID, Name: "Platform"},
			subteam: &Subteam{ID: subteamID, TeamID: teamID, Name: "SRE"},
		}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = svc.DeleteSubteam(context.Background(), companyID.String(), teamID.String(), subteamID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{"delete_subteam_memberships", "delete_subteam"}, repo.steps)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown subteam", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeTeamRepository{
			team: &Team{ID: teamID, CompanyID: companyID, Name: "Platform"},
		}
		svc := NewService(db, repo)

		err = svc.DeleteSubteam(context.Background(), companyID.String(), teamID.String(), subteamID.String())

		assert.ErrorIs(t, err, teamerrors.ErrSubteamNotFound)
	})
}
