// controllers/patient_controller.go
package controllers

import (
	"carelink/models"
	"carelink/services"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	patientService *services.PatientService
	validator      *utils.ValidationService
}

func NewPatientController(patientService *services.PatientService, validator *utils.ValidationService) *PatientController {
	return &PatientController{
		patientService: patientService,
		validator:      validator,
	}
}

// GetProfile handles GET /patients/me
func (pc *PatientController) GetProfile(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	profile, err := pc.patientService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", profile)
}

// UpdateProfile handles PUT /patients/me
func (pc *PatientController) UpdateProfile(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req models.UpdatePatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if validationErrors := pc.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	patient, err := pc.patientService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated", patient)
}

// UpdateEmergencyContact handles PUT /patients/me/emergency-contact
func (pc *PatientController) UpdateEmergencyContact(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req models.UpdateEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if validationErrors := pc.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := pc.patientService.UpdateEmergencyContact(c.Request.Context(), userID, req); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Emergency contact updated", nil)
}
