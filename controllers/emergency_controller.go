// controllers/emergency_controller.go
package controllers

import (
	"carelink/models"
	"carelink/services"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

type EmergencyController struct {
	emergencyService *services.EmergencyService
	validator        *utils.ValidationService
}

func NewEmergencyController(emergencyService *services.EmergencyService, validator *utils.ValidationService) *EmergencyController {
	return &EmergencyController{
		emergencyService: emergencyService,
		validator:        validator,
	}
}

// TriggerSOS handles POST /emergency/sos
func (ec *EmergencyController) TriggerSOS(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req models.TriggerSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if validationErrors := ec.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := ec.emergencyService.TriggerSOS(c.Request.Context(), userID, req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Emergency alert triggered successfully", resp)
}

// GetStatus handles GET /emergency/:emergencyId
func (ec *EmergencyController) GetStatus(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	emergency, err := ec.emergencyService.GetStatus(c.Request.Context(), userID, c.Param("emergencyId"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Emergency status retrieved", emergency)
}

// GetHistory handles GET /emergency/history
func (ec *EmergencyController) GetHistory(c *gin.Context) {
	userID := utils.GetUserID(c)
	if userID == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	page := utils.ParseIntQuery(c, "page", 1)
	limit := utils.ParseIntQuery(c, "limit", 10)

	emergencies, meta, err := ec.emergencyService.GetHistory(c.Request.Context(), userID, page, limit)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Emergency history retrieved", emergencies, meta)
}

// UpdateStatus handles PUT /emergency/:emergencyId/status
func (ec *EmergencyController) UpdateStatus(c *gin.Context) {
	var req models.UpdateEmergencyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if validationErrors := ec.validator.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := ec.emergencyService.UpdateStatus(c.Request.Context(), c.Param("emergencyId"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Emergency status updated", resp)
}
