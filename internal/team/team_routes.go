package team

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
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", middleware.Authorize(rbacService, "team", "read"), handler.GetAll)
		teams.GET("/:id", middleware.Authorize(rbacService, "team", "read"), handler.GetById)
		teams.POST("", middleware.Authorize(rbacService, "team", "create"), handler.Create)
		teams.PUT("/:id", middleware.Authorize(rbacService, "team", "update"), handler.Update)
		teams.DELETE("/:id", middleware.Authorize(rbacService, "team", "delete"), handler.Delete)

		teams.POST("/:id/subteams", middleware.Authorize(rbacService, "team", "update"), handler.CreateSubteam)
		teams.DELETE("/:id/subteams/:subteamId", middleware.Authorize(rbacService, "team", "update"), handler.DeleteSubteam)
	}
}
