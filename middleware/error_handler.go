package middleware

import (
	"carelink/models"
	"carelink/utils"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	environment string
	logger      *logrus.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(environment string, logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		environment: environment,
		logger:      logger,
	}
}

// Handle returns the error handling middleware
func (eh *ErrorHandler) Handle() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				eh.handlePanic(c, err)
			}
		}()

		c.Next()

		// Handle errors that were set during request processing
		if len(c.Errors) > 0 {
			eh.handleGinErrors(c)
		}
	})
}

// handlePanic handles panic recovery
func (eh *ErrorHandler) handlePanic(c *gin.Context, err interface{}) {
	// Log the panic with stack trace
	eh.logger.WithFields(logrus.Fields{
		"panic":      err,
		"stack":      string(debug.Stack()),
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"user_id":    c.GetString("userID"),
	}).Error("Panic recovered")

	// Create error response
	response := models.ErrorResponse{
		Error:     "INTERNAL_ERROR",
		Message:   "Internal server error",
		Code:      "PANIC_RECOVERED",
		RequestID: c.GetString("request_id"),
	}

	// Include stack trace in development
	if eh.environment == "development" {
		response.Details = map[string]interface{}{
			"panic": err,
			"stack": string(debug.Stack()),
		}
	}

	c.JSON(http.StatusInternalServerError, response)
	c.Abort()
}

// handleGinErrors handles errors added to gin context
func (eh *ErrorHandler) handleGinErrors(c *gin.Context) {
	// Get the last error (most recent)
	lastError := c.Errors.Last()
	if lastError == nil {
		return
	}

	// Log all errors
	for _, ginErr := range c.Errors {
		eh.logError(c, ginErr.Err)
	}

	// Process the main error
	eh.processError(c, lastError.Err)
}

// logError logs an error with context
func (eh *ErrorHandler) logError(c *gin.Context, err error) {
	fields := logrus.Fields{
		"error":      err.Error(),
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"user_id":    c.GetString("userID"),
		"ip":         c.ClientIP(),
		"user_agent": c.GetHeader("User-Agent"),
	}

	if serviceErr, ok := utils.GetServiceError(err); ok && serviceErr.StatusCode < http.StatusInternalServerError {
		eh.logger.WithFields(fields).Warn("Client error")
		return
	}

	eh.logger.WithFields(fields).Error("Server error")
}

// processError processes an error and sends appropriate response
func (eh *ErrorHandler) processError(c *gin.Context, err error) {
	requestID := c.GetString("request_id")

	switch {
	case eh.isValidationError(err):
		eh.handleValidationError(c, err, requestID)
	case eh.isServiceError(err):
		eh.handleServiceError(c, err, requestID)
	case eh.isMongoError(err):
		eh.handleMongoError(c, err, requestID)
	default:
		eh.handleGenericError(c, err, requestID)
	}
}

// isValidationError checks if error is a validation error
func (eh *ErrorHandler) isValidationError(err error) bool {
	var validationErr validator.ValidationErrors
	return errors.As(err, &validationErr)
}

// isServiceError checks if error is a service-level error
func (eh *ErrorHandler) isServiceError(err error) bool {
	_, ok := utils.GetServiceError(err)
	return ok
}

// isMongoError checks if error is a MongoDB error
func (eh *ErrorHandler) isMongoError(err error) bool {
	return mongo.IsDuplicateKeyError(err) ||
		errors.Is(err, mongo.ErrNoDocuments) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}

// handleValidationError handles validation errors
func (eh *ErrorHandler) handleValidationError(c *gin.Context, err error, requestID string) {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return
	}

	response := models.ErrorResponse{
		Error:     "VALIDATION_ERROR",
		Message:   "Validation failed",
		Code:      "VALIDATION_FAILED",
		RequestID: requestID,
		Details:   eh.formatValidationErrors(validationErr),
	}
	c.JSON(http.StatusBadRequest, response)
}

// handleServiceError handles service-level errors
func (eh *ErrorHandler) handleServiceError(c *gin.Context, err error, requestID string) {
	serviceErr, ok := utils.GetServiceError(err)
	if !ok {
		return
	}

	statusCode := serviceErr.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	response := models.ErrorResponse{
		Error:     serviceErr.Code,
		Message:   serviceErr.Message,
		Code:      serviceErr.Code,
		RequestID: requestID,
	}

	if serviceErr.Details != "" {
		response.Details = map[string]interface{}{
			"details": serviceErr.Details,
		}
	}

	c.JSON(statusCode, response)
}

// handleMongoError handles MongoDB errors
func (eh *ErrorHandler) handleMongoError(c *gin.Context, err error, requestID string) {
	switch {
	case mongo.IsDuplicateKeyError(err):
		response := models.ErrorResponse{
			Error:     "CONFLICT",
			Message:   "Resource already exists",
			Code:      "DUPLICATE_RESOURCE",
			RequestID: requestID,
		}
		c.JSON(http.StatusConflict, response)

	case errors.Is(err, mongo.ErrNoDocuments):
		response := models.ErrorResponse{
			Error:     "NOT_FOUND",
			Message:   "Resource not found",
			Code:      "RESOURCE_NOT_FOUND",
			RequestID: requestID,
		}
		c.JSON(http.StatusNotFound, response)

	case mongo.IsTimeout(err):
		response := models.ErrorResponse{
			Error:     "TIMEOUT",
			Message:   "Database operation timed out",
			Code:      "DATABASE_TIMEOUT",
			RequestID: requestID,
		}
		c.JSON(http.StatusGatewayTimeout, response)

	case mongo.IsNetworkError(err):
		response := models.ErrorResponse{
			Error:     "SERVICE_UNAVAILABLE",
			Message:   "Database connection error",
			Code:      "DATABASE_CONNECTION_ERROR",
			RequestID: requestID,
		}
		c.JSON(http.StatusServiceUnavailable, response)

	default:
		response := models.ErrorResponse{
			Error:     "INTERNAL_ERROR",
			Message:   "Database error",
			Code:      "DATABASE_ERROR",
			RequestID: requestID,
		}
		c.JSON(http.StatusInternalServerError, response)
	}
}

// handleGenericError handles unknown errors
func (eh *ErrorHandler) handleGenericError(c *gin.Context, err error, requestID string) {
	response := models.ErrorResponse{
		Error:     "INTERNAL_ERROR",
		Message:   "An unexpected error occurred",
		Code:      "UNKNOWN_ERROR",
		RequestID: requestID,
	}

	// Include error details in development
	if eh.environment == "development" {
		response.Details = map[string]interface{}{
			"original_error": err.Error(),
		}
	}

	c.JSON(http.StatusInternalServerError, response)
}

// formatValidationErrors formats validator.ValidationErrors into a readable format
func (eh *ErrorHandler) formatValidationErrors(validationErrors validator.ValidationErrors) map[string]interface{} {
	errors := make(map[string]interface{})

	for _, err := range validationErrors {
		field := err.Field()
		tag := err.Tag()

		var message string
		switch tag {
		case "required":
			message = "This field is required"
		case "email":
			message = "Must be a valid email address"
		case "min":
			message = "Value is too short"
		case "max":
			message = "Value is too long"
		case "len":
			message = "Invalid length"
		case "oneof":
			message = "Invalid value"
		case "latitude", "longitude":
			message = "Must be a valid coordinate"
		case "phone":
			message = "Must be a valid phone number"
		default:
			message = "Invalid value"
		}

		errors[field] = map[string]interface{}{
			"message": message,
			"tag":     tag,
			"value":   err.Value(),
		}
	}

	return map[string]interface{}{
		"fields": errors,
	}
}
