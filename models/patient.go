package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is the medical profile attached to a user account with the patient
// role. Dispatch resolves patients through UserID, never the profile ID.
type Patient struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID            primitive.ObjectID `json:"userId" bson:"userId"`
	DateOfBirth       *time.Time         `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender            string             `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodGroup        string             `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	Allergies         []string           `json:"allergies,omitempty" bson:"allergies,omitempty"`
	ChronicConditions []string           `json:"chronicConditions,omitempty" bson:"chronicConditions,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// =================== REQUEST MODELS ===================

type UpdatePatientProfileRequest struct {
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	Gender            string     `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BloodGroup        string     `json:"bloodGroup,omitempty" validate:"omitempty,blood_group"`
	Allergies         []string   `json:"allergies,omitempty"`
	ChronicConditions []string   `json:"chronicConditions,omitempty"`
}

// =================== RESPONSE MODELS ===================

// PatientProfile joins the medical profile with the account fields the portal
// shows on the profile page.
type PatientProfile struct {
	Patient          Patient          `json:"patient"`
	Email            string           `json:"email"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Phone            string           `json:"phone"`
	EmergencyContact *PersonalContact `json:"emergencyContact,omitempty"`
}
