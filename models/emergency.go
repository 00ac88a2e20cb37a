package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Emergency is the persisted record of one SOS case.
type Emergency struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	PatientID     primitive.ObjectID   `json:"patientId" bson:"patientId"`
	EmergencyType string               `json:"emergencyType" bson:"emergencyType"`
	Severity      string               `json:"severity" bson:"severity"`
	Status        string               `json:"status" bson:"status"`
	Description   string               `json:"description" bson:"description"`
	Location      EmergencyLocation    `json:"location" bson:"location"`
	Vitals        *EmergencyVitals     `json:"vitals,omitempty" bson:"vitals,omitempty"`
	Contacts      []EmergencyContact   `json:"contacts,omitempty" bson:"contacts,omitempty"`
	Responders    []EmergencyResponder `json:"responders,omitempty" bson:"responders,omitempty"`
	Notes         string               `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
	ResolvedAt    *time.Time           `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
}

type EmergencyLocation struct {
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	Address     string      `json:"address,omitempty" bson:"address,omitempty"`
	Landmark    string      `json:"landmark,omitempty" bson:"landmark,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// EmergencyVitals is a snapshot taken at trigger time and never updated afterward.
type EmergencyVitals struct {
	Consciousness string `json:"consciousness,omitempty" bson:"consciousness,omitempty"`
	Breathing     string `json:"breathing,omitempty" bson:"breathing,omitempty"`
	Pulse         string `json:"pulse,omitempty" bson:"pulse,omitempty"`
	Bleeding      bool   `json:"bleeding" bson:"bleeding"`
}

// EmergencyContact entries are mutated in place as notification attempts
// complete. They are never removed from a case.
type EmergencyContact struct {
	Name       string     `json:"name" bson:"name"`
	Phone      string     `json:"phone" bson:"phone"`
	Relation   string     `json:"relation" bson:"relation"`
	Notified   bool       `json:"notified" bson:"notified"`
	NotifiedAt *time.Time `json:"notifiedAt,omitempty" bson:"notifiedAt,omitempty"`
}

type EmergencyResponder struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type             string             `json:"type" bson:"type"`
	Name             string             `json:"name" bson:"name"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	EstimatedArrival *time.Time         `json:"estimatedArrival,omitempty" bson:"estimatedArrival,omitempty"`
	Status           string             `json:"status" bson:"status"`
}

// Emergency types
const (
	EmergencyTypeMedical     = "medical"
	EmergencyTypeAccident    = "accident"
	EmergencyTypeCardiac     = "cardiac"
	EmergencyTypeRespiratory = "respiratory"
	EmergencyTypeTrauma      = "trauma"
	EmergencyTypeOther       = "other"
)

// Severity levels
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Emergency statuses
const (
	EmergencyStatusActive    = "active"
	EmergencyStatusResponded = "responded"
	EmergencyStatusResolved  = "resolved"
	EmergencyStatusCancelled = "cancelled"
)

// Responder statuses
const (
	ResponderStatusNotified   = "notified"
	ResponderStatusDispatched = "dispatched"
	ResponderStatusArrived    = "arrived"
	ResponderStatusCompleted  = "completed"
)

// Responder types
const (
	ResponderTypeAmbulance = "ambulance"
	ResponderTypeHospital  = "hospital"
	ResponderTypeDoctor    = "doctor"
	ResponderTypeVolunteer = "volunteer"
)

// =================== REQUEST MODELS ===================

type TriggerSOSRequest struct {
	EmergencyType string             `json:"emergencyType" validate:"required,emergency_type"`
	Severity      string             `json:"severity" validate:"required,severity"`
	Description   string             `json:"description" validate:"required,max=1000"`
	Location      SOSLocationRequest `json:"location" validate:"required"`
	Vitals        *SOSVitalsRequest  `json:"vitals,omitempty"`
}

// SOSLocationRequest carries pointer coordinates so an absent latitude or
// longitude is distinguishable from zero and rejected at the boundary.
type SOSLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Address   string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Landmark  string   `json:"landmark,omitempty" validate:"omitempty,max=200"`
}

type SOSVitalsRequest struct {
	Consciousness string `json:"consciousness,omitempty" validate:"omitempty,oneof=conscious unconscious semi-conscious"`
	Breathing     string `json:"breathing,omitempty" validate:"omitempty,oneof=normal difficulty stopped"`
	Pulse         string `json:"pulse,omitempty" validate:"omitempty,oneof=normal weak strong absent"`
	Bleeding      bool   `json:"bleeding"`
}

type UpdateEmergencyStatusRequest struct {
	Status          string                  `json:"status,omitempty" validate:"omitempty,oneof=active responded resolved cancelled"`
	ResponderUpdate *ResponderUpdateRequest `json:"responderUpdate,omitempty"`
	Notes           string                  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type ResponderUpdateRequest struct {
	ResponderID      string     `json:"responderId" validate:"required"`
	Status           string     `json:"status" validate:"required,oneof=notified dispatched arrived completed"`
	EstimatedArrival *time.Time `json:"estimatedArrival,omitempty"`
}

// =================== RESPONSE MODELS ===================

// EmergencySummary is the case projection returned by the trigger endpoint.
type EmergencySummary struct {
	ID            primitive.ObjectID `json:"id"`
	Status        string             `json:"status"`
	EmergencyType string             `json:"emergencyType"`
	Severity      string             `json:"severity"`
	Location      EmergencyLocation  `json:"location"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// NotificationOutcome reports a single contact-notification attempt. The
// trigger response always carries these so callers can tell whether human
// contacts were actually reached, independent of the HTTP status.
type NotificationOutcome struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NearbyResponder is a hospital candidate annotated with its distance from
// the emergency location. DistanceKm is nil when the hospital record has no
// stored coordinates.
type NearbyResponder struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Phone      string             `json:"phone"`
	Address    HospitalAddress    `json:"address"`
	DistanceKm *float64           `json:"distanceKm"`
}

type TriggerSOSResponse struct {
	Emergency       EmergencySummary      `json:"emergency"`
	NearbyHospitals []NearbyResponder     `json:"nearbyHospitals"`
	Notifications   []NotificationOutcome `json:"notifications"`
	Instructions    []string              `json:"instructions"`
}

type UpdateEmergencyStatusResponse struct {
	ID         primitive.ObjectID   `json:"id"`
	Status     string               `json:"status"`
	Responders []EmergencyResponder `json:"responders"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}
