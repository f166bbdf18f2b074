package company

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
	companies := r.Group("/company")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", middleware.Authorize(rbacService, "company", "read"), handler.GetMine)
		companies.PUT("", middleware.Authorize(rbacService, "company", "update"), handler.Update)
	}
}
