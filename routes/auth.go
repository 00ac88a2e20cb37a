// routes/auth.go
package routes

import (
	"carelink/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configures authentication-related routes
func SetupAuthRoutes(auth *gin.RouterGroup, authController *controllers.AuthController) {
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	// Token management
	auth.POST("/refresh", authController.RefreshToken)
}
