package employee

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetOptions(t *testing.T) {
	companyID := uuid.New()
	cacheKey := GetEmployeeOptionsKey(companyID.String())

	emp := Employee{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeNumber: "EMP-000001",
		FullName:       "Ana Souza",
		Email:          "ana@example.com",
		Status:         StatusActive,
		ContractType:   ContractCLT,
		HireDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	t.Run("success cache hit skips the database", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		cached, err := json.Marshal(mapToListResponse([]Employee{emp}))
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(cacheKey).SetVal(string(cached))

		queried := false
		repo := &fakeRepository{
			findOptionsFn: func(ctx context.Context, cid string) ([]Employee, error) {
				queried = true
				return nil, nil
			},
		}
		svc := NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, nil, rdb)

		resp, err := svc.GetOptions(context.Background(), companyID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ana Souza", resp[0].FullName)
		assert.False(t, queried)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success cache miss queries and fills the cache", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		expected, err := json.Marshal(mapToListResponse([]Employee{emp}))
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSet(cacheKey, expected, 1*time.Hour).SetVal("OK")

		repo := &fakeRepository{
			findOptionsFn: func(ctx context.Context, cid string) ([]Employee, error) {
				return []Employee{emp}, nil
			},
		}
		svc := NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, nil, rdb)

		resp, err := svc.GetOptions(context.Background(), companyID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "EMP-000001", resp[0].EmployeeNumber)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("success admitting an employee drops the cached options", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(cacheKey).SetVal(1)

		repo := &fakeRepository{
			emailExistsFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
			createFn:      func(ctx context.Context, e *Employee) error { return nil },
		}
		svc := NewService(db, repo, &fakeAssignmentRepository{}, &fakeCounter{}, &fakeOutbox{}, rdb)

		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err = svc.Admit(context.Background(), companyID.String(), AdmitEmployeeRequest{
			FullName:     "Bruno Lima",
			Email:        "bruno@example.com",
			ContractType: ContractCLT,
			HireDate:     "2024-02-01",
		})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
