package counter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGetNextValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	companyID := uuid.NewString()

	mock.ExpectQuery(`INSERT INTO company_counters \(company_id, counter_type, last_value, updated_at\)`).
		WithArgs(companyID, "employee_number").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	got, err := NewRepository(gdb).GetNextValue(context.Background(), companyID, "employee_number")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
