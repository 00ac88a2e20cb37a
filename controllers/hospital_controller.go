// controllers/hospital_controller.go
package controllers

import (
	"carelink/models"
	"carelink/services"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

type HospitalController struct {
	hospitalService *services.HospitalService
	validator       *utils.ValidationService
}

func NewHospitalController(hospitalService *services.HospitalService, validator *utils.ValidationService) *HospitalController {
	return &HospitalController{
		hospitalService: hospitalService,
		validator:       validator,
	}
}

// GetNearby handles GET /hospitals/nearby
func (hc *HospitalController) GetNearby(c *gin.Context) {
	var req models.NearbyHospitalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return
	}

	if validationErrors := hc.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	hospitals, meta, err := hc.hospitalService.GetNearby(c.Request.Context(), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Nearby hospitals retrieved", hospitals, meta)
}

// GetEmergencyHospitals handles GET /hospitals/emergency
func (hc *HospitalController) GetEmergencyHospitals(c *gin.Context) {
	lat := utils.ParseFloatQuery(c, "latitude", 0)
	lng := utils.ParseFloatQuery(c, "longitude", 0)
	if c.Query("latitude") == "" || c.Query("longitude") == "" {
		utils.BadRequestResponse(c, "latitude and longitude are required")
		return
	}

	hospitals, err := hc.hospitalService.GetEmergencyHospitals(c.Request.Context(), lat, lng)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Emergency hospitals retrieved", hospitals)
}

// Search handles GET /hospitals/search
func (hc *HospitalController) Search(c *gin.Context) {
	var req models.SearchHospitalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid query parameters")
		return
	}

	if validationErrors := hc.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	hospitals, meta, err := hc.hospitalService.Search(c.Request.Context(), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Hospitals retrieved", hospitals, meta)
}

// GetSpecialties handles GET /hospitals/specialties
func (hc *HospitalController) GetSpecialties(c *gin.Context) {
	specialties, err := hc.hospitalService.GetSpecialties(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Specialties retrieved", specialties)
}

// GetByID handles GET /hospitals/:hospitalId
func (hc *HospitalController) GetByID(c *gin.Context) {
	hospital, err := hc.hospitalService.GetByID(c.Request.Context(), c.Param("hospitalId"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Hospital retrieved", hospital)
}
