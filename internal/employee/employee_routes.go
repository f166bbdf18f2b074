package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.Authorize(rbacService, "employee", "read"), handler.GetAll)
		employees.GET("/options", middleware.Authorize(rbacService, "employee", "read"), handler.GetOptions)
		employees.GET("/:id", middleware.Authorize(rbacService, "employee", "read"), handler.GetById)
		employees.POST("", middleware.Authorize(rbacService, "employee", "create"), handler.Admit)
		employees.PUT("/:id", middleware.Authorize(rbacService, "employee", "update"), handler.Update)
		// Status change authz is finer than admin/member: the service allows
		// self-service, so the route only requires read.
		employees.PATCH("/:id/status", middleware.Authorize(rbacService, "employee", "read"), handler.ChangeStatus)
		employees.PUT("/:id/assignments", middleware.Authorize(rbacService, "employee", "update"), handler.ReconcileAssignments)
		employees.DELETE("/:id", middleware.Authorize(rbacService, "employee", "delete"), handler.Delete)
	}
}
