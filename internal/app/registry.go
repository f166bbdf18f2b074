package app

import (
	"foome-hcm/internal/auth"
	"foome-hcm/internal/company"
	"foome-hcm/internal/document"
	"foome-hcm/internal/employee"
	"foome-hcm/internal/messaging/kafka"
	"foome-hcm/internal/middleware"
	"foome-hcm/internal/notification"
	"foome-hcm/internal/onboarding"
	"foome-hcm/internal/rbac"
	"foome-hcm/internal/role"
	"foome-hcm/internal/shared/counter"
	"foome-hcm/internal/storage"
	"foome-hcm/internal/team"
	"foome-hcm/internal/timeoff"

	"github.com/gin-gonic/gin"
)

// buildRouter wires every module behind /api/v1. Repos share the gorm
// handle; services share the *sql.DB for transactions and the outbox repo
// for event publication.
func buildRouter(a *App) (*gin.Engine, error) {
	if a.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	rbacService, err := rbac.NewService()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewFSStore(a.Config.StoragePath)
	if err != nil {
		return nil, err
	}
	signer := storage.NewURLSigner(a.Config.JWTSecret, storage.DefaultSignedURLTTL)

	counterRepo := counter.NewRepository(a.DB)
	outboxRepo := kafka.NewOutboxRepository(a.SQLDB)

	authRepo := auth.NewRepository(a.DB)
	companyRepo := company.NewRepository(a.DB)
	employeeRepo := employee.NewRepository(a.DB)
	assignmentRepo := employee.NewAssignmentRepository(a.DB)
	roleRepo := role.NewRepository(a.DB)
	teamRepo := team.NewRepository(a.DB)
	documentRepo := document.NewRepository(a.DB)
	timeoffRepo := timeoff.NewRepository(a.DB)
	onboardingRepo := onboarding.NewRepository(a.DB)
	notificationRepo := notification.NewRepository(a.DB)

	authService := auth.NewService(a.SQLDB, authRepo, companyRepo, employeeRepo, counterRepo, a.Config.JWTSecret, a.Logger)
	companyService := company.NewService(companyRepo, a.Logger)
	employeeService := employee.NewService(a.SQLDB, employeeRepo, assignmentRepo, counterRepo, outboxRepo, a.RDB, a.Logger)
	roleService := role.NewService(a.SQLDB, roleRepo, a.Logger)
	teamService := team.NewService(a.SQLDB, teamRepo, a.Logger)
	documentService := document.NewService(a.SQLDB, documentRepo, store, signer, outboxRepo, a.Logger)
	timeoffService := timeoff.NewService(a.SQLDB, timeoffRepo, outboxRepo, a.Logger)
	onboardingService := onboarding.NewService(a.SQLDB, onboardingRepo, a.Logger)
	notificationService := notification.NewService(notificationRepo, a.Logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(a.Logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, auth.NewHandler(authService, a.Logger))
	company.RegisterRoutes(api, company.NewHandler(companyService, a.Logger), rbacService)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, a.Logger), rbacService)
	role.RegisterRoutes(api, role.NewHandler(roleService, a.Logger), rbacService)
	team.RegisterRoutes(api, team.NewHandler(teamService, a.Logger), rbacService)
	document.RegisterRoutes(api, document.NewHandler(documentService, a.Logger), rbacService)
	timeoff.RegisterRoutes(api, timeoff.NewHandler(timeoffService, a.Logger), rbacService)
	onboarding.RegisterRoutes(api, onboarding.NewHandler(onboardingService, a.Logger), rbacService)
	notification.RegisterRoutes(api, notification.NewHandler(notificationService, a.Logger), rbacService)

	return router, nil
}
