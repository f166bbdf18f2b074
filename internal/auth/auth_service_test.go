package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	autherrors "foome-hcm/internal/auth/errors"
	"foome-hcm/internal/company"
	"foome-hcm/internal/employee"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	user        *User
	emailExists bool
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, u *User) error {
	f.user = u
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	if f.user == nil {
		return nil, autherrors.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailExists, nil
}

type fakeCompanyRepository struct {
	created *company.Company
}

func (f *fakeCompanyRepository) WithTx(tx *sql.Tx) company.Repository { return f }

func (f *fakeCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	f.created = c
	return nil
}

func (f *fakeCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	return f.created, nil
}

func (f *fakeCompanyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }

type fakeEmployeeRepository struct {
	employee *employee.Employee
	created  *employee.Employee
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	f.created = e
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindOptionsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return f.employee, nil
}

func (f *fakeEmployeeRepository) FindByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	if f.employee == nil {
		return nil, sql.ErrNoRows
	}
	return f.employee, nil
}

func (f *fakeEmployeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakeCounter struct {
	value int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.value++
	return f.value, nil
}

const testSecret = "test-secret"

func existingUser(t *testing.T, password string) (*User, *employee.Employee) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	companyID := uuid.New()
	u := &User{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}
	emp := &employee.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    &u.ID,
		FullName:  "Ana Souza",
		Email:     u.Email,
		IsAdmin:   true,
	}
	return u, emp
}

func TestLogin(t *testing.T) {
	t.Run("success issues a token carrying the tenant claims", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		u, emp := existingUser(t, "s3cret-pass")
		svc := NewService(db, &fakeUserRepository{user: u}, &fakeCompanyRepository{}, &fakeEmployeeRepository{employee: emp}, &fakeCounter{}, testSecret)

		resp, err := svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "s3cret-pass"})

		assert.NoError(t, err)
		assert.Equal(t, u.ID.String(), resp.UserID)
		assert.Equal(t, u.CompanyID.String(), resp.CompanyID)
		assert.True(t, resp.IsAdmin)

		token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, u.CompanyID.String(), claims["company_id"])
		assert.Equal(t, emp.ID.String(), claims["employee_id"])
		assert.Equal(t, true, claims["is_admin"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		u, emp := existingUser(t, "s3cret-pass")
		svc := NewService(db, &fakeUserRepository{user: u}, &fakeCompanyRepository{}, &fakeEmployeeRepository{employee: emp}, &fakeCounter{}, testSecret)

		_, err = svc.Login(context.Background(), LoginRequest{Email: u.Email, Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		db, _, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeUserRepository{}, &fakeCompanyRepository{}, &fakeEmployeeRepository{}, &fakeCounter{}, testSecret)

		_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	t.Run("success creates company user and admin employee together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		users := &fakeUserRepository{}
		companies := &fakeCompanyRepository{}
		employees := &fakeEmployeeRepository{}
		svc := NewService(db, users, companies, employees, &fakeCounter{}, testSecret)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Register(context.Background(), RegisterRequest{
			CompanyName: "Acme Ltda",
			CNPJ:        "12.345.678/0001-90",
			FullName:    "Ana Souza",
			Email:       "ana@example.com",
			Password:    "s3cret-pass",
		})

		assert.NoError(t, err)
		assert.True(t, resp.IsAdmin)
		assert.NotNil(t, companies.created)
		assert.NotNil(t, users.user)
		assert.NotNil(t, employees.created)
		assert.Equal(t, companies.created.ID, employees.created.CompanyID)
		assert.True(t, employees.created.IsAdmin)
		assert.Equal(t, "EMP-000001", employees.created.EmployeeNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		svc := NewService(db, &fakeUserRepository{emailExists: true}, &fakeCompanyRepository{}, &fakeEmployeeRepository{}, &fakeCounter{}, testSecret)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err = svc.Register(context.Background(), RegisterRequest{
			CompanyName: "Acme Ltda",
			CNPJ:        "12.345.678/0001-90",
			FullName:    "Ana Souza",
			Email:       "ana@example.com",
			Password:    "s3cret-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
