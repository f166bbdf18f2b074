package timeoff

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
	timeoff := r.Group("/timeoff")
	timeoff.Use(middleware.AuthMiddleware())
	{
		timeoff.GET("", middleware.Authorize(rbacService, "timeoff", "read"), handler.GetAll)
		timeoff.GET("/:id", middleware.Authorize(rbacService, "timeoff", "read"), handler.GetById)
		timeoff.POST("", middleware.Authorize(rbacService, "timeoff", "create"), handler.Create)
		timeoff.POST("/:id/approve", middleware.Authorize(rbacService, "timeoff", "review"), handler.Approve)
		timeoff.POST("/:id/reject", middleware.Authorize(rbacService, "timeoff", "review"), handler.Reject)
	}
}
