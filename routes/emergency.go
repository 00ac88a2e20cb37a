// routes/emergency.go
package routes

import (
	"carelink/controllers"
	"carelink/middleware"
	"carelink/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SetupEmergencyRoutes configures emergency SOS related routes
func SetupEmergencyRoutes(router *gin.RouterGroup, emergencyController *controllers.EmergencyController, authMiddleware *middleware.AuthMiddleware, redisClient *redis.Client) {
	emergency := router.Group("/emergency")

	// SOS triggering gets its own per-user rate limit
	sos := emergency.Group("/sos")
	sos.Use(middleware.EmergencyRateLimit(redisClient))
	{
		sos.POST("", emergencyController.TriggerSOS)
	}

	emergency.GET("/history", emergencyController.GetHistory)
	emergency.GET("/:emergencyId", emergencyController.GetStatus)

	// Status transitions are reserved for clinical and admin staff
	emergency.PUT("/:emergencyId/status",
		authMiddleware.RequireRole(models.RoleDoctor, models.RoleAdmin),
		emergencyController.UpdateStatus)
}
