package role

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the position catalog entry. Requirement collections live in child
// tables keyed by role_id and are deleted with the role.
type Role struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeamID    *uuid.UUID `gorm:"type:uuid"`

	Title        string `gorm:"type:varchar(255);not null"`
	ContractType string `gorm:"type:varchar(10);not null;default:'CLT'"`
	Description  string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`

	Courses              []Course              `gorm:"foreignKey:RoleID"`
	ComplementaryCourses []ComplementaryCourse `gorm:"foreignKey:RoleID"`
	TechnicalSkills      []TechnicalSkill      `gorm:"foreignKey:RoleID"`
	BehavioralSkills     []BehavioralSkill     `gorm:"foreignKey:RoleID"`
	Languages            []Language            `gorm:"foreignKey:RoleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Course struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
}

func (Course) TableName() string { return "role_courses" }

type ComplementaryCourse struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
}

func (ComplementaryCourse) TableName() string { return "role_complementary_courses" }

type TechnicalSkill struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Level  string    `gorm:"type:varchar(30)"`
}

func (TechnicalSkill) TableName() string { return "role_technical_skills" }

type BehavioralSkill struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
}

func (BehavioralSkill) TableName() string { return "role_behavioral_skills" }

type Language struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(100);not null"`
	Level  string    `gorm:"type:varchar(30)"`
}

func (Language) TableName() string { return "role_languages" }
