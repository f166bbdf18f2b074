package role

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	roleerrors "foome-hcm/internal/role/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRoleRepository struct {
	role               *Role
	currentAssignments int64
	teamBelongs        bool

	steps []string
}

func (f *fakeRoleRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRoleRepository) Create(ctx context.Context, r *Role) error {
	f.role = r
	return nil
}

func (f *fakeRoleRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Role, error) {
	if f.role == nil {
		return nil, nil
	}
	return []Role{*f.role}, nil
}

func (f *fakeRoleRepository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Role, error) {
	if f.role == nil {
		return nil, roleerrors.ErrRoleNotFound
	}
	return f.role, nil
}

func (f *fakeRoleRepository) Update(ctx context.Context, r *Role) error {
	f.role = r
	return nil
}

func (f *fakeRoleRepository) TeamBelongsToCompany(ctx context.Context, teamID, companyID uuid.UUID) (bool, error) {
	return f.teamBelongs, nil
}

func (f *fakeRoleRepository) CountCurrentAssignments(ctx context.Context, roleID uuid.UUID) (int64, error) {
	f.steps = append(f.steps, "count")
	return f.currentAssignments, nil
}

func (f *fakeRoleRepository) ReplaceChildren(ctx context.Context, r *Role) error {
	f.steps = append(f.steps, "replace_children")
	return nil
}

func (f *fakeRoleRepository) DeleteChildren(ctx context.Context, roleID uuid.UUID) error {
	f.steps = append(f.steps, "delete_children")
	return nil
}

func (f *fakeRoleRepository) DeleteHistoricalAssignments(ctx context.Context, roleID uuid.UUID) error {
	f.steps = append(f.steps, "delete_history")
	return nil
}

func (f *fakeRoleRepository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	f.steps = append(f.steps, "delete_role")
	f.role = nil
	return nil
}

func TestDeleteRole(t *testing.T) {
	companyID := uuid.New()
	roleID := uuid.New()

	existing := func() *Role {
		return &Role{ID: roleID, CompanyID: companyID, Title: "Backend Engineer", ContractType: "CLT"}
	}

	t.Run("success removes children and history before the role", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeRoleRepository{role: existing()}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = svc.Delete(context.Background(), companyID.String(), roleID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{"count", "delete_children", "delete_history", "delete_role"}, repo.steps)
		assert.Nil(t, repo.role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative refuses while employees hold the role", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeRoleRepository{role: existing(), currentAssignments: 3}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = svc.Delete(context.Background(), companyID.String(), roleID.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleInUse)
		assert.Equal(t, []string{"count"}, repo.steps)
		assert.NotNil(t, repo.role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown role", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeRoleRepository{})

		err = svc.Delete(context.Background(), companyID.String(), roleID.String())

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}

func TestCreateRole(t *testing.T) {
	companyID := uuid.New()

	t.Run("success attaches requirement collections", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		repo := &fakeRoleRepository{}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), companyID.String(), CreateRoleRequest{
			Title:            "Data Engineer",
			ContractType:     "PJ",
			Courses:          []string{"Computer Science"},
			TechnicalSkills:  []SkillInput{{Name: "SQL", Level: "advanced"}},
			BehavioralSkills: []string{"Communication"},
			Languages:        []SkillInput{{Name: "English", Level: "fluent"}},
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Courses, 1)
		assert.Len(t, resp.TechnicalSkills, 1)
		assert.Equal(t, "advanced", resp.TechnicalSkills[0].Level)
		assert.Len(t, repo.role.Languages, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative team from another company", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeRoleRepository{teamBelongs: false})

		_, err = svc.Create(context.Background(), companyID.String(), CreateRoleRequest{
			Title:        "Data Engineer",
			ContractType: "PJ",
			TeamID:       uuid.NewString(),
		})

		assert.ErrorIs(t, err, roleerrors.ErrTeamNotInCompany)
	})
}
