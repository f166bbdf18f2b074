package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope restricts a query to one company. Every repository read/write goes
// through this (or an explicit company_id condition); there is no query path
// without a tenant. Repos hold company ids either as uuid.UUID or as the
// raw string from the token, so both are accepted.
func Scope[T string | uuid.UUID](companyID T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
