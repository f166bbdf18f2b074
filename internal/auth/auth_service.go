package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	autherrors "foome-hcm/internal/auth/errors"
	"foome-hcm/internal/company"
	"foome-hcm/internal/employee"
	"foome-hcm/internal/shared/contextutil"
	"foome-hcm/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Me(ctx context.Context, userID string) (MeResponse, error)
}

type service struct {
	db        *sql.DB
	users     Repository
	companies company.Repository
	employees employee.Repository
	counter   counter.Repository
	jwtSecret []byte
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	users Repository,
	companies company.Repository,
	employees employee.Repository,
	counterRepo counter.Repository,
	jwtSecret string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		users:     users,
		companies: companies,
		employees: employees,
		counter:   counterRepo,
		jwtSecret: []byte(jwtSecret),
		logger:    l,
	}
}

// Register creates the tenant in one shot: the company, its first user and
// the matching admin employee all commit together or not at all.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	userTx := s.users.WithTx(tx)
	companyTx := s.companies.WithTx(tx)
	employeeTx := s.employees.WithTx(tx)

	taken, err := userTx.EmailExists(ctx, req.Email)
	if err != nil {
		s.logger.Error("register email check failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if taken {
		return AuthResponse{}, autherrors.ErrEmailTaken
	}

	if existing, err := companyTx.FindByCNPJ(ctx, req.CNPJ); err == nil && existing != nil && existing.ID != uuid.Nil {
		return AuthResponse{}, autherrors.ErrCNPJTaken
	}

	comp := &company.Company{
		ID:   uuid.New(),
		Name: req.CompanyName,
		CNPJ: req.CNPJ,
	}
	if err := companyTx.Create(ctx, comp); err != nil {
		s.logger.Error("register company persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash password failed", zap.Error(err))
		return AuthResponse{}, err
	}

	u := &User{
		ID:           uuid.New(),
		CompanyID:    comp.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := userTx.Create(ctx, u); err != nil {
		s.logger.Error("register user persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, comp.ID.String(), "employee_number")
	if err != nil {
		s.logger.Error("register generate employee number failed", zap.Error(err))
		return AuthResponse{}, err
	}

	emp := &employee.Employee{
		ID:             uuid.New(),
		CompanyID:      comp.ID,
		UserID:         &u.ID,
		EmployeeNumber: fmt.Sprintf("EMP-%06d", nextVal),
		FullName:       req.FullName,
		Email:          req.Email,
		Status:         employee.StatusActive,
		ContractType:   employee.ContractCLT,
		IsAdmin:        true,
		HireDate:       time.Now().UTC(),
	}
	if err := employeeTx.Create(ctx, emp); err != nil {
		s.logger.Error("register employee persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := s.issueToken(u.ID.String(), emp.ID.String(), comp.ID.String(), true)
	if err != nil {
		s.logger.Error("register issue token failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("company_id", comp.ID.String()),
		zap.String("user_id", u.ID.String()),
	)

	return AuthResponse{
		Token:      token,
		UserID:     u.ID.String(),
		EmployeeID: emp.ID.String(),
		CompanyID:  comp.ID.String(),
		IsAdmin:    true,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if u == nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("request_id", rid))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	emp, err := s.employees.FindByUserID(ctx, u.ID.String())
	if err != nil {
		s.logger.Error("login employee lookup failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID.String(), emp.ID.String(), u.CompanyID.String(), emp.IsAdmin)
	if err != nil {
		s.logger.Error("login issue token failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)

	return AuthResponse{
		Token:      token,
		UserID:     u.ID.String(),
		EmployeeID: emp.ID.String(),
		CompanyID:  u.CompanyID.String(),
		IsAdmin:    emp.IsAdmin,
	}, nil
}

func (s *service) Me(ctx context.Context, userID string) (MeResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return MeResponse{}, autherrors.ErrUserNotFound
	}

	emp, err := s.employees.FindByUserID(ctx, u.ID.String())
	if err != nil {
		return MeResponse{}, autherrors.ErrUserNotFound
	}

	return MeResponse{
		UserID:     u.ID.String(),
		EmployeeID: emp.ID.String(),
		CompanyID:  u.CompanyID.String(),
		Email:      u.Email,
		FullName:   emp.FullName,
		IsAdmin:    emp.IsAdmin,
	}, nil
}

func (s *service) issueToken(userID, employeeID, companyID string, isAdmin bool) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":     userID,
		"employee_id": employeeID,
		"company_id":  companyID,
		"is_admin":    isAdmin,
		"iat":         now.Unix(),
		"exp":         now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
