package onboarding

import (
	"foome-hcm/internal/middleware"
	"foome-hcm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	onboarding := r.Group("/onboarding")
	onboarding.Use(middleware.AuthMiddleware())
	{
		onboarding.GET("/tasks", middleware.Authorize(rbacService, "onboarding", "read"), handler.GetTasks)
		onboarding.POST("/tasks", middleware.Authorize(rbacService, "onboarding", "create"), handler.CreateTask)
		onboarding.DELETE("/tasks/:id", middleware.Authorize(rbacService, "onboarding", "delete"), handler.DeleteTask)

		onboarding.GET("/assignments", middleware.Authorize(rbacService, "onboarding", "read"), handler.GetAssignments)
		onboarding.GET("/assignments/overdue", middleware.Authorize(rbacService, "onboarding", "read"), handler.GetOverdue)
		onboarding.POST("/assignments", middleware.Authorize(rbacService, "onboarding", "create"), handler.Assign)
		onboarding.POST("/assignments/:id/complete", middleware.Authorize(rbacService, "onboarding", "complete"), handler.Complete)
	}
}
