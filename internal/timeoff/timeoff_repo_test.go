package timeoff

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The repo handed out by WithTx must run its statements on the caller's
// transaction, not on the pool. With ordered expectations, a write that
// escaped to the pool would open its own transaction and fail the
// begin/update/commit sequence below.
func TestWithTxBindsToCallersTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := NewRepository(gdb)

	employeeID := uuid.New()
	companyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employees" SET "status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	qtx := repo.WithTx(tx)
	assert.NoError(t, qtx.SetEmployeeStatus(context.Background(), employeeID, companyID, "vacation"))

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
