package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedProfile struct {
	Phone         string `validate:"omitempty,phone"`
	BloodGroup    string `validate:"omitempty,blood_group"`
	EmergencyType string `validate:"omitempty,emergency_type"`
	Severity      string `validate:"omitempty,severity"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	vs := NewValidationService()

	errs := vs.ValidateStruct(validatedProfile{
		Phone:         "+919876543210",
		BloodGroup:    "O+",
		EmergencyType: "cardiac",
		Severity:      "critical",
	})

	assert.Empty(t, errs)
}

func TestValidateStructRejectsInvalidPhone(t *testing.T) {
	vs := NewValidationService()

	errs := vs.ValidateStruct(validatedProfile{Phone: "12345"})

	require.Len(t, errs, 1)
	assert.Equal(t, "Phone", errs[0].Field)
	assert.Equal(t, "Invalid phone number format", errs[0].Message)
}

func TestValidateStructRejectsUnknownBloodGroup(t *testing.T) {
	vs := NewValidationService()

	errs := vs.ValidateStruct(validatedProfile{BloodGroup: "C+"})

	require.Len(t, errs, 1)
	assert.Equal(t, "BloodGroup", errs[0].Field)
	assert.Equal(t, "Invalid blood group", errs[0].Message)
}

func TestValidateStructRejectsUnknownEmergencyType(t *testing.T) {
	vs := NewValidationService()

	errs := vs.ValidateStruct(validatedProfile{EmergencyType: "sprain"})

	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid emergency type", errs[0].Message)
}

func TestValidateStructRejectsUnknownSeverity(t *testing.T) {
	vs := NewValidationService()

	errs := vs.ValidateStruct(validatedProfile{Severity: "extreme"})

	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid severity level", errs[0].Message)
}
