// routes/hospital.go
package routes

import (
	"carelink/controllers"

	"github.com/gin-gonic/gin"
)

// SetupHospitalRoutes configures hospital directory routes
func SetupHospitalRoutes(router *gin.RouterGroup, hospitalController *controllers.HospitalController) {
	hospitals := router.Group("/hospitals")

	hospitals.GET("/nearby", hospitalController.GetNearby)
	hospitals.GET("/emergency", hospitalController.GetEmergencyHospitals)
	hospitals.GET("/search", hospitalController.Search)
	hospitals.GET("/specialties", hospitalController.GetSpecialties)
	hospitals.GET("/:hospitalId", hospitalController.GetByID)
}
