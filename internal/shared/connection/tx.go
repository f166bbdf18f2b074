package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// TxSession returns a gorm session whose statements all run on the given
// transaction instead of the connection pool. This is what repo WithTx
// implementations hand out, so a service-owned *sql.Tx carries every domain
// write and the outbox insert together.
//
// The session's statement is cloned before the swap so the pooled base
// session is never touched.
func TxSession(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return session
}
