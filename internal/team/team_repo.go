package team

import (
	"context"
	"database/sql"
	"errors"

	"foome-hcm/internal/shared/connection"
	teamerrors "foome-hcm/internal/team/errors"
	"foome-hcm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mocks/team_repo_mock.go -package=mocks

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Team, error)
	FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Team, error)
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id, companyID uuid.UUID) error

	CreateSubteam(ctx context.Context, st *Subteam) error
	FindSubteamByID(ctx context.Context, id, teamID uuid.UUID) (*Subteam, error)
	DeleteSubteam(ctx context.Context, id, teamID uuid.UUID) error

	DeleteTeamMemberships(ctx context.Context, teamID uuid.UUID) error
	DeleteSubteamMemberships(ctx context.Context, subteamID uuid.UUID) error
	DeleteSubteamMembershipsByTeam(ctx context.Context, teamID uuid.UUID) error
	DeleteSubteamsByTeam(ctx context.Context, teamID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.TxSession(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Subteams").
		Order("name asc").
		Find(&teams).Error
	return teams, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, id, companyID uuid.UUID) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Subteams").
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, teamerrors.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).
		Model(&Team{}).
		Scopes(tenant.Scope(t.CompanyID)).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Team{}).Error
}

func (r *repository) CreateSubteam(ctx context.Context, st *Subteam) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *repository) FindSubteamByID(ctx context.Context, id, teamID uuid.UUID) (*Subteam, error) {
	var st Subteam
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&st, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, teamerrors.ErrSubteamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *repository) DeleteSubteam(ctx context.Context, id, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Where("id = ?", id).
		Delete(&Subteam{}).Error
}

func (r *repository) DeleteTeamMemberships(ctx context.Context, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM team_members WHERE team_id = ?", teamID).Error
}

func (r *repository) DeleteSubteamMemberships(ctx context.Context, subteamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM subteam_members WHERE subteam_id = ?", subteamID).Error
}

func (r *repository) DeleteSubteamMembershipsByTeam(ctx context.Context, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM subteam_members WHERE subteam_id IN (SELECT id FROM subteams WHERE team_id = ?)", teamID).Error
}

func (r *repository) DeleteSubteamsByTeam(ctx context.Context, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Delete(&Subteam{}).Error
}
