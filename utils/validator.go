package utils

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ValidationService struct {
	validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func NewValidationService() *ValidationService {
	v := validator.New()

	// Register custom validators
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("emergency_type", validateEmergencyType)
	v.RegisterValidation("severity", validateSeverity)
	v.RegisterValidation("blood_group", validateBloodGroup)

	return &ValidationService{
		validator: v,
	}
}

func (vs *ValidationService) ValidateStruct(s interface{}) []ValidationError {
	var validationErrors []ValidationError

	err := vs.validator.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: vs.getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func (vs *ValidationService) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone number format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "latitude":
		return "Latitude must be between -90 and 90"
	case "longitude":
		return "Longitude must be between -180 and 180"
	case "emergency_type":
		return "Invalid emergency type"
	case "severity":
		return "Invalid severity level"
	case "blood_group":
		return "Invalid blood group"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Custom validation functions
func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	// Remove all non-digit characters
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	// Check if it's a valid length (10-15 digits)
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return false
	}

	// Basic phone number pattern
	phoneRegex := regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)
	return phoneRegex.MatchString(phone)
}

func validateEmergencyType(fl validator.FieldLevel) bool {
	emergencyType := fl.Field().String()
	validTypes := []string{"medical", "accident", "cardiac", "respiratory", "trauma", "other"}

	for _, validType := range validTypes {
		if emergencyType == validType {
			return true
		}
	}
	return false
}

func validateSeverity(fl validator.FieldLevel) bool {
	severity := fl.Field().String()
	validLevels := []string{"low", "medium", "high", "critical"}

	for _, validLevel := range validLevels {
		if severity == validLevel {
			return true
		}
	}
	return false
}

func validateBloodGroup(fl validator.FieldLevel) bool {
	group := fl.Field().String()
	validGroups := []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

	for _, validGroup := range validGroups {
		if group == validGroup {
			return true
		}
	}
	return false
}
