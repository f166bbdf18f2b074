package auth

import (
	"foome-hcm/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Credential endpoints are the brute-force surface; throttle by IP.
		authGroup.POST("/register", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(2), 10), handler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
