package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.Authorize(rbacService, "notification", "read"), handler.GetMine)
		notifications.PATCH("/:id/read", middleware.Authorize(rbacService, "notification", "update"), handler.MarkRead)
		notifications.PATCH("/read-all", middleware.Authorize(rbacService, "notification", "update"), handler.MarkAllRead)
	}
}
