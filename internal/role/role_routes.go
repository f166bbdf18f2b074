package role

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
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", middleware.Authorize(rbacService, "role", "read"), handler.GetAll)
		roles.GET("/:id", middleware.Authorize(rbacService, "role", "read"), handler.GetById)
		roles.POST("", middleware.Authorize(rbacService, "role", "create"), handler.Create)
		roles.PUT("/:id", middleware.Authorize(rbacService, "role", "update"), handler.Update)
		roles.DELETE("/:id", middleware.Authorize(rbacService, "role", "delete"), handler.Delete)
	}
}
