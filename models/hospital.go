package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hospital is a registered care facility. Address coordinates are stored as a
// GeoJSON point so the collection can carry a 2dsphere index for $near queries.
type Hospital struct {
	ID                 primitive.ObjectID        `json:"id" bson:"_id,omitempty"`
	Name               string                    `json:"name" bson:"name"`
	RegistrationNumber string                    `json:"registrationNumber" bson:"registrationNumber"`
	Type               string                    `json:"type" bson:"type"`
	Specialties        []string                  `json:"specialties" bson:"specialties"`
	Address            HospitalAddress           `json:"address" bson:"address"`
	Contact            HospitalContact           `json:"contact" bson:"contact"`
	Facilities         []string                  `json:"facilities,omitempty" bson:"facilities,omitempty"`
	OperatingHours     HospitalOperatingHours    `json:"operatingHours" bson:"operatingHours"`
	EmergencyServices  HospitalEmergencyServices `json:"emergencyServices" bson:"emergencyServices"`
	Rating             float64                   `json:"rating" bson:"rating"`
	IsActive           bool                      `json:"isActive" bson:"isActive"`
	CreatedAt          time.Time                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt" bson:"updatedAt"`
}

type HospitalAddress struct {
	Street      string        `json:"street,omitempty" bson:"street,omitempty"`
	City        string        `json:"city" bson:"city"`
	State       string        `json:"state" bson:"state"`
	ZipCode     string        `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Coordinates *GeoJSONPoint `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// GeoJSONPoint stores coordinates in [longitude, latitude] order as MongoDB
// expects for geospatial indexes.
type GeoJSONPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoJSONPoint builds a Point from latitude/longitude in conventional order.
func NewGeoJSONPoint(lat, lng float64) *GeoJSONPoint {
	return &GeoJSONPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Latitude returns the latitude component, false when the point is malformed.
func (p *GeoJSONPoint) Latitude() (float64, bool) {
	if p == nil || len(p.Coordinates) < 2 {
		return 0, false
	}
	return p.Coordinates[1], true
}

// Longitude returns the longitude component, false when the point is malformed.
func (p *GeoJSONPoint) Longitude() (float64, bool) {
	if p == nil || len(p.Coordinates) < 2 {
		return 0, false
	}
	return p.Coordinates[0], true
}

type HospitalContact struct {
	Phone           string `json:"phone" bson:"phone"`
	Email           string `json:"email,omitempty" bson:"email,omitempty"`
	EmergencyNumber string `json:"emergencyNumber,omitempty" bson:"emergencyNumber,omitempty"`
	Website         string `json:"website,omitempty" bson:"website,omitempty"`
}

type HospitalOperatingHours struct {
	Open          string `json:"open,omitempty" bson:"open,omitempty"`
	Close         string `json:"close,omitempty" bson:"close,omitempty"`
	Emergency24x7 bool   `json:"emergency24x7" bson:"emergency24x7"`
}

type HospitalEmergencyServices struct {
	Ambulance    bool `json:"ambulance" bson:"ambulance"`
	TraumaCenter bool `json:"traumaCenter" bson:"traumaCenter"`
	ICU          bool `json:"icu" bson:"icu"`
	BloodBank    bool `json:"bloodBank" bson:"bloodBank"`
}

// Hospital types
const (
	HospitalTypeGovernment = "government"
	HospitalTypePrivate    = "private"
	HospitalTypeTrust      = "trust"
	HospitalTypeMultiSpec  = "multi-specialty"
	HospitalTypeSuperSpec  = "super-specialty"
)

// EmergencyPhone prefers the dedicated emergency line over the main number.
func (h *Hospital) EmergencyPhone() string {
	if h.Contact.EmergencyNumber != "" {
		return h.Contact.EmergencyNumber
	}
	return h.Contact.Phone
}

// =================== REQUEST MODELS ===================

type NearbyHospitalsRequest struct {
	Latitude          float64 `form:"latitude" validate:"required,latitude"`
	Longitude         float64 `form:"longitude" validate:"required,longitude"`
	RadiusKm          float64 `form:"radius" validate:"omitempty,min=0,max=500"`
	Specialty         string  `form:"specialty"`
	Type              string  `form:"type"`
	EmergencyServices bool    `form:"emergencyServices"`
	Page              int     `form:"page" validate:"omitempty,min=1"`
	PageSize          int     `form:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchHospitalsRequest struct {
	Query    string `form:"q" validate:"required,min=2"`
	City     string `form:"city"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// =================== RESPONSE MODELS ===================

// HospitalWithDistance decorates a hospital with the distance from a query
// point, formatted the way the listing endpoints render it ("4.2 km").
type HospitalWithDistance struct {
	Hospital `bson:",inline"`
	Distance string `json:"distance,omitempty" bson:"-"`
}
