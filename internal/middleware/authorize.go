package middleware

import (
	"net/http"

	"foome-hcm/internal/rbac"
	"foome-hcm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the casbin policy for the actor's tenant role.
func Authorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("employee_id"); !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		role := rbac.RoleMember
		if c.GetBool("is_admin") {
			role = rbac.RoleAdmin
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
