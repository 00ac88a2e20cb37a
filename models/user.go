package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email            string             `json:"email" bson:"email"`
	Password         string             `json:"-" bson:"password"`
	FirstName        string             `json:"firstName" bson:"firstName"`
	LastName         string             `json:"lastName" bson:"lastName"`
	Phone            string             `json:"phone" bson:"phone"`
	Role             string             `json:"role" bson:"role"`
	EmergencyContact *PersonalContact   `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	LastLoginAt      *time.Time         `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PersonalContact is the person alerted when the user triggers an SOS.
type PersonalContact struct {
	Name     string `json:"name" bson:"name"`
	Phone    string `json:"phone" bson:"phone"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty"`
}

// User roles
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// =================== REQUEST MODELS ===================

type UpdateEmergencyContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,phone"`
	Relation string `json:"relation,omitempty" validate:"omitempty,max=50"`
}
