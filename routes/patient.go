// routes/patient.go
package routes

import (
	"carelink/controllers"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes configures patient profile routes
func SetupPatientRoutes(router *gin.RouterGroup, patientController *controllers.PatientController) {
	patients := router.Group("/patients")

	me := patients.Group("/me")
	{
		me.GET("", patientController.GetProfile)
		me.PUT("", patientController.UpdateProfile)
		me.PUT("/emergency-contact", patientController.UpdateEmergencyContact)
	}
}
