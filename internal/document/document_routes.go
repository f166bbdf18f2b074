package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.GET("", middleware.Authorize(rbacService, "document", "read"), handler.GetAll)
		documents.GET("/expiring", middleware.Authorize(rbacService, "document", "read"), handler.GetExpiring)
		documents.GET("/:id", middleware.Authorize(rbacService, "document", "read"), handler.GetById)
		documents.GET("/:id/url", middleware.Authorize(rbacService, "document", "read"), handler.GetSignedURL)
		documents.POST("", middleware.Authorize(rbacService, "document", "create"), handler.Upload)
		documents.POST("/:id/approve", middleware.Authorize(rbacService, "document", "review"), handler.Approve)
		documents.POST("/:id/reject", middleware.Authorize(rbacService, "document", "review"), handler.Reject)
		documents.DELETE("/:id", middleware.Authorize(rbacService, "document", "delete"), handler.Delete)
	}

	// Signed links carry their own authorization in the token.
	r.GET("/files", handler.ServeFile)
}
